package config

import "os"

func IsDebug() bool {
	return os.Getenv("PROMPTCMD_DEBUG") == "1"
}
