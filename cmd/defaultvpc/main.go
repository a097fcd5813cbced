package main

import (
	"os"
	"path/filepath"
	"time"

	aws "defaultvpc/internal/providers/aws"
)

func main() {
	a := &app{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		lookupEnv:   os.LookupEnv,
		newService:  defaultServiceFactory,
		sessionName: aws.SessionName(filepath.Base(os.Args[0]), time.Now()),
		spinner:     true,
	}

	os.Exit(a.execute(os.Args[1:]))
}
