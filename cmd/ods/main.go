// Command ods inspects and edits ODS container files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	ods "github.com/starfederation/ods-go"
	"github.com/starfederation/ods-go/compress"
)

type cli struct {
	File        string `help:"ODS file to operate on." short:"f" required:""`
	Compression string `help:"Compression used by the file (none, gzip, zlib, zstd, lz4)." short:"c" default:"gzip"`

	List   listCmd   `cmd:"" help:"List the top-level tags."`
	Get    getCmd    `cmd:"" help:"Print the tag at a dotted key."`
	Find   findCmd   `cmd:"" help:"Report whether a dotted key exists."`
	Delete deleteCmd `cmd:"" help:"Delete the tag at a dotted key."`
	Export exportCmd `cmd:"" help:"Re-compress the file's contents into another file."`
	Import importCmd `cmd:"" help:"Replace the file's contents with another file's."`
}

func (c *cli) open() *ods.ObjectDataStructure {
	comp, ok := compress.Lookup(c.Compression)
	if !ok {
		log.Fatalf("unknown compression %q", c.Compression)
	}
	return ods.NewFileWith(c.File, comp)
}

type listCmd struct{}

func (listCmd) Run(root *cli) error {
	tags, err := root.open().GetAll()
	if err != nil {
		return err
	}
	for _, t := range tags {
		printTag(t, "")
	}
	return nil
}

type getCmd struct {
	Key string `arg:"" help:"Dotted key."`
}

func (g getCmd) Run(root *cli) error {
	t, err := root.open().Get(g.Key)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("key %q not found", g.Key)
	}
	printTag(t, "")
	return nil
}

type findCmd struct {
	Key string `arg:"" help:"Dotted key."`
}

func (f findCmd) Run(root *cli) error {
	found, err := root.open().Find(f.Key)
	if err != nil {
		return err
	}
	fmt.Println(found)
	if !found {
		os.Exit(1)
	}
	return nil
}

type deleteCmd struct {
	Key string `arg:"" help:"Dotted key."`
}

func (d deleteCmd) Run(root *cli) error {
	removed, err := root.open().Delete(d.Key)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("key %q not found", d.Key)
	}
	return nil
}

type exportCmd struct {
	Out         string `arg:"" help:"Destination file."`
	Compression string `help:"Compression for the destination." default:"gzip"`
}

func (e exportCmd) Run(root *cli) error {
	comp, ok := compress.Lookup(e.Compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", e.Compression)
	}
	return root.open().SaveToFile(e.Out, comp)
}

type importCmd struct {
	From        string `arg:"" help:"Source file."`
	Compression string `help:"Compression of the source." default:"gzip"`
}

func (i importCmd) Run(root *cli) error {
	comp, ok := compress.Lookup(i.Compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", i.Compression)
	}
	return root.open().ImportFile(i.From, comp)
}

func printTag(t ods.Tag, indent string) {
	switch x := t.(type) {
	case *ods.ObjectTag:
		fmt.Printf("%sobject %q\n", indent, x.Name())
		for _, child := range x.Value {
			printTag(child, indent+"  ")
		}
	case *ods.ListTag:
		fmt.Printf("%slist %q\n", indent, x.Name())
		for _, child := range x.Value {
			printTag(child, indent+"  ")
		}
	case *ods.CompressedObjectTag:
		fmt.Printf("%scompressed object %q\n", indent, x.Name())
		for _, child := range x.Value {
			printTag(child, indent+"  ")
		}
	default:
		fmt.Printf("%s%T %q = %v\n", indent, t, t.Name(), ods.Unwrap(t))
	}
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("ods"),
		kong.Description("Inspect and edit ODS container files."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&args); err != nil {
		log.Fatal(err)
	}
}
