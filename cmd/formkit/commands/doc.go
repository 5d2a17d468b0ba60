// Package commands implements the formkit command line: currency
// formatting, input masks, HTML rendering and listing URL helpers.
package commands
