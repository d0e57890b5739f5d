// Package dotstencil handles the .stencil file that stores a theme's local
// store connection settings (store URL, port, credentials) and its
// customLayouts section.
//
// A File is loaded once at the start of `stencil init`, merged with the
// answers the user gives, and written back with Save. Keys this package does
// not know about are carried through untouched.
package dotstencil
