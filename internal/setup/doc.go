// Package setup implements `stencil init`: it asks for store connection
// details, merges them into the theme's .stencil file and, when the theme
// bundles with jspm, builds the development dependency bundle.
//
// The steps run strictly in order and every failure ends the run:
//
//  1. load and parse an existing .stencil file (parse errors stop before any prompt)
//  2. ask the four store questions, defaulting to the saved values
//  3. merge the answers over the saved settings and write the file
//  4. read the theme config.json and, if it has a jspm section, check the
//     packages directory and run the bundle task
//  5. print the ready message
package setup
