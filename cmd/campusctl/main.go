// Command campusctl administers a campus database: migrations, accounts,
// event statuses, reminders and bulk result imports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
