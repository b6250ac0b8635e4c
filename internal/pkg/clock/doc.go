// Package clock provides a tiny time abstraction.
//
// Code that renders dates, such as the copyright year on the home page, takes a
// Clocker so tests can pin the instant with Fixed.
package clock
