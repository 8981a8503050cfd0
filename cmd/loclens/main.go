// Command loclens counts lines of code by language.
package main

import "github.com/loclens/loclens/internal/cmdline"

func main() {
	cmdline.Execute()
}
