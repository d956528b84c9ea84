// File: cmd/optionsconfig/main.go
package main

func main() {
	Execute()
}
