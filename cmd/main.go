package main

import "os"

func main() {
	// cobra has already printed the error and usage
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
