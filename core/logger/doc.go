// Package logger formats the output of scripts for the terminal and records
// command events as newline delimited JSON.
package logger
