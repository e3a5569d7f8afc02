// Command flownet inspects workflow definition files.
//
// Usage:
//
//	flownet validate workflow.yaml   # structural validation
//	flownet show workflow.yaml       # print a summary
//	flownet convert in.json out.yaml # convert between JSON and YAML
//	flownet version                  # show version
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/BaSui01/flownet/network"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		err = runValidate(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "version":
		fmt.Println("flownet", buildVersion())
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  flownet validate <file>        validate a workflow definition
  flownet show <file>            print a definition summary
  flownet convert <in> <out>     convert between .json and .yaml
  flownet version                show version`)
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("validate expects exactly one file")
	}

	// LoadDefinition validates after parsing.
	def, err := network.LoadDefinition(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d nodes, %d edges)\n", def.ID, len(def.Nodes), len(def.Edges))
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show expects exactly one file")
	}

	def, err := network.LoadDefinition(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("graph:       %s\n", def.ID)
	if def.Description != "" {
		fmt.Printf("description: %s\n", def.Description)
	}
	fmt.Printf("entry:       %s\n", def.Entry)
	fmt.Printf("exit:        %s\n", def.Exit)

	fmt.Printf("nodes (%d):\n", len(def.Nodes))
	for _, node := range def.Nodes {
		marker := ""
		if node.IsAgent {
			marker = " [agent]"
		}
		fmt.Printf("  %-20s func=%s%s\n", node.ID, node.Func, marker)
	}

	fmt.Printf("edges (%d):\n", len(def.Edges))
	for _, edge := range def.Edges {
		if edge.Conditional {
			fmt.Printf("  %s -> ? via %s\n", edge.Source, edge.Condition)
		} else {
			fmt.Printf("  %s -> %s\n", edge.Source, edge.Target)
		}
	}
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("convert expects an input and an output file")
	}

	def, err := network.LoadDefinition(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := network.SaveDefinition(def, fs.Arg(1)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", fs.Arg(1))
	return nil
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
