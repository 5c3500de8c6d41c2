package rlog

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput sets the destination of the logger
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetPrefix sets the prefix of every log line
func SetPrefix(prefix string) {
	logger.SetPrefix(prefix)
}

// Println calls l.Output to print to the logger.
func Println(v ...interface{}) {
	logger.Println(v...)
}

// Printf calls l.Output to print to the logger.
func Printf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

// Fatal is equivalent to l.Print() followed by a call to os.Exit(1).
func Fatal(v ...interface{}) {
	logger.Fatal(v...)
}

// Fatalln is equivalent to l.Println() followed by a call to os.Exit(1).
func Fatalln(v ...interface{}) {
	logger.Fatalln(v...)
}
