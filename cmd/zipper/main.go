package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zissis-pap/zipper"
	"github.com/zissis-pap/zipper/rpc"
)

func main() {
	app := &cli.App{
		Name:  "zipper",
		Usage: "Build and apply binary delta patches",
		Commands: []*cli.Command{
			encodeCommand,
			decodeCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

var blockSizeFlag = &cli.IntFlag{
	Name:  "block-size",
	Usage: "block size in bytes, a positive multiple of 8",
	Value: 64,
}

var remoteFlag = &cli.StringFlag{
	Name:  "remote",
	Usage: "address of a running zipperd to delegate to, e.g. localhost:20000",
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "Build a patch that turns REFERENCE into TARGET",
	ArgsUsage: "REFERENCE TARGET PATCH",
	Flags:     []cli.Flag{blockSizeFlag, remoteFlag},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 3 {
			return cli.Exit("usage: zipper encode REFERENCE TARGET PATCH", 1)
		}
		referencePath, targetPath, patchPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

		reference, err := os.ReadFile(referencePath)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "reading reference"), 1)
		}
		target, err := os.ReadFile(targetPath)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "reading target"), 1)
		}

		var patch []byte
		if remote := c.String("remote"); remote != "" {
			patch, err = encodeRemote(remote, reference, target, c.Int("block-size"))
		} else {
			patch, err = zipper.Encode(reference, target, c.Int("block-size"))
		}
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := os.WriteFile(patchPath, patch, 0o644); err != nil {
			return cli.Exit(err, 1)
		}

		ratio := 100 * (1 - float64(len(patch))/float64(len(target)))
		fmt.Printf("Patch       : %s (%d bytes)\n", patchPath, len(patch))
		fmt.Printf("Compression : %d B patch vs %d B %s  -> %.1f%%\n",
			len(patch), len(target), targetPath, ratio)
		return nil
	},
}

var decodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "Apply PATCH to REFERENCE to reproduce the original target",
	ArgsUsage: "REFERENCE PATCH [OUTPUT]",
	Flags:     []cli.Flag{remoteFlag},
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 2 || c.Args().Len() > 3 {
			return cli.Exit("usage: zipper decode REFERENCE PATCH [OUTPUT]", 1)
		}
		referencePath, patchPath := c.Args().Get(0), c.Args().Get(1)
		outputPath := c.Args().Get(2)
		if outputPath == "" {
			outputPath = "rebuilt.bin"
		}

		reference, err := os.ReadFile(referencePath)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "reading reference"), 1)
		}
		patch, err := os.ReadFile(patchPath)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "reading patch"), 1)
		}

		var target []byte
		if remote := c.String("remote"); remote != "" {
			target, err = decodeRemote(remote, reference, patch)
		} else {
			target, err = zipper.Decode(reference, patch)
		}
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := os.WriteFile(outputPath, target, 0o644); err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Printf("Rebuilt     : %s (%d bytes)\n", outputPath, len(target))
		return nil
	},
}

func encodeRemote(address string, reference, target []byte, blockSize int) ([]byte, error) {
	client := rpc.NewClient(address)
	if err := client.Dial(); err != nil {
		return nil, err
	}
	defer client.Close()
	return client.Encode(reference, target, blockSize)
}

func decodeRemote(address string, reference, patch []byte) ([]byte, error) {
	client := rpc.NewClient(address)
	if err := client.Dial(); err != nil {
		return nil, err
	}
	defer client.Close()
	return client.Decode(reference, patch)
}
