package main

import "github.com/Sierra-Arn/minio-core/cmd"

func main() {
	cmd.Execute()
}
