// Command mcpath simulates GBM price paths and prices European options.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
