package mobilecore

// Greeting is the fixed message returned by SayHi.
const Greeting = "Hello mh from Go!"

// SayHi returns a fixed greeting. Hosts call it to check that the library
// is loaded and reachable.
func SayHi() string {
	return Greeting
}
