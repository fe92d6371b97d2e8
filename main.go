// SPDX-License-Identifier: MPL-2.0

package main

import cmd "ccexport-cli/cmd/ccexport"

func main() {
	cmd.Execute()
}
