/* Encode digits as Micro QR M1 symbols */
package main

import (
	"os"

	microqr "github.com/doismellburning/microqr/src"
)

func main() {
	var status = microqr.MicroQRMain(os.Args)
	if status != 0 {
		os.Exit(status)
	}
}
