// Package main provides the mlp command line: train a small sigmoid
// network on a two-input truth table and print its predictions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("mlp %s\n", version)
	case "xor":
		fs := flag.NewFlagSet("xor", flag.ExitOnError)
		klog.InitFlags(fs)
		flags := newConfigFlags(fs)
		_ = fs.Parse(os.Args[2:])

		cfg, err := flags.Resolve()
		if err != nil {
			klog.Exitf("Invalid configuration: %+v", err)
		}
		if err := runXOR(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
			klog.Fatalf("Failed with error: %+v", err)
		}
		klog.Flush()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("mlp - feedforward sigmoid networks in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train on a truth table (see mlp xor -h)")
}
