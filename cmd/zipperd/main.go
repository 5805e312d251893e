package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/zissis-pap/zipper/rpc"
	"github.com/zissis-pap/zipper/watch"
)

func main() {
	app := &cli.App{
		Name:  "zipperd",
		Usage: "Host the patch RPC service, optionally auto-rebuilding a patch when a reference file changes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Value: "localhost:20000", Usage: "address to listen on"},
			&cli.StringFlag{Name: "watch", Usage: "path to a reference file to watch for changes"},
			&cli.StringFlag{Name: "target", Usage: "path to the target blob to re-encode against on change"},
			&cli.StringFlag{Name: "out", Value: "watched_patch.bin", Usage: "where to write the rebuilt patch"},
			&cli.IntFlag{Name: "block-size", Value: 64, Usage: "block size in bytes, a positive multiple of 8"},
		},
		Action: action,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func action(c *cli.Context) error {
	address := c.String("address")
	server := rpc.NewServer(address)

	if referencePath := c.String("watch"); referencePath != "" {
		targetPath := c.String("target")
		if targetPath == "" {
			log.Fatalln("zipperd: --watch requires --target")
		}
		target, err := os.ReadFile(targetPath)
		if err != nil {
			log.Fatalf("zipperd: cannot read target: %v\n", err)
		}

		w := watch.New(referencePath, target, c.Int("block-size"))
		outPath := c.String("out")
		sink := make(chan watch.Result, 8)

		go func() {
			for result := range sink {
				switch {
				case result.Err != nil:
					log.Printf("zipperd: rebuild failed: %v\n", result.Err)
				case result.Skipped:
					log.Println("zipperd: reference event fired, content unchanged, skipping")
				default:
					if err := os.WriteFile(outPath, result.Patch, 0o644); err != nil {
						log.Printf("zipperd: writing rebuilt patch: %v\n", err)
						continue
					}
					log.Printf("zipperd: rebuilt patch at %s (%d bytes)\n", outPath, len(result.Patch))
				}
			}
		}()

		go func() {
			if err := w.Watch(sink, 100*time.Millisecond); err != nil {
				log.Printf("zipperd: watcher stopped: %v\n", err)
			}
		}()
	}

	log.Printf("zipperd: starting, address %v\n", address)
	return server.Serve()
}
