// Package viz renders estimates and sweep grids for the terminal.
package viz
