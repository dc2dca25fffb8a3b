// Package templates holds the templ components rendered by the web server.
//
// Components are written directly against templ.ComponentFunc. Every dynamic
// string goes through templ.EscapeString before it reaches the writer.
package templates
