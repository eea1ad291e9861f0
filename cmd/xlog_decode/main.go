package main

import (
	"context"
	"os"

	"github.com/xlogdecode/xlog-decode/cmd/xlog_decode/cmd"
	"github.com/xlogdecode/xlog-decode/log"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	err := cmd.Run(context.Background(), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}
