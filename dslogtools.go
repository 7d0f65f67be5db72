//
// dslogtools.go
//
// The main utility built with this suite of tools. It takes access log
// files as command line arguments or stdin and outputs to stdout.
//
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pingidentity/ldapsdk-sub019/command"
	"github.com/pingidentity/ldapsdk-sub019/parser"
	"github.com/pingidentity/ldapsdk-sub019/source"
	"github.com/pingidentity/ldapsdk-sub019/util"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "dslogtools"
	app.Description = "A collection of tools designed to help parse and understand directory server access logs"
	app.Action = runCommand

	app.Commands = makeClientFlags()

	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose, v", Usage: "outputs additional information about the parser"},
		cli.StringFlag{Name: "config", Usage: "path to a TOML configuration profile"},
	}
	cli.VersionFlag = cli.BoolFlag{Name: "version, V"}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
	}
}

func checkClientCommands(context *cli.Context, count int, definition command.Definition) error {
	var length = 0
	for _, flag := range definition.Flags {
		switch flag.Type {
		case command.IntSourceSlice:
			length = len(context.IntSlice(flag.Name))
		case command.StringSourceSlice:
			length = len(context.StringSlice(flag.Name))
		}
		if length > count {
			return errors.New("there cannot be more arguments than files")
		}
	}
	return nil
}

func makeClientFlags() []cli.Command {
	var c []cli.Command
	factory := command.GetFactory()
	for _, name := range factory.GetNames() {
		definition, _ := factory.GetDefinition(name)
		clientCommand := cli.Command{Name: name, Action: runCommand, Usage: definition.Usage}
		for _, argument := range definition.Flags {
			if argument.ShortName != "" {
				argument.Name = fmt.Sprintf("%s, %s", argument.Name, argument.ShortName)
			}
			switch argument.Type {
			case command.Bool:
				clientCommand.Flags = append(clientCommand.Flags, cli.BoolFlag{Name: argument.Name, Usage: argument.Usage})
			case command.Int:
				clientCommand.Flags = append(clientCommand.Flags, cli.IntFlag{Name: argument.Name, Usage: argument.Usage})
			case command.IntSourceSlice:
				clientCommand.Flags = append(clientCommand.Flags, cli.IntSliceFlag{Name: argument.Name, Usage: argument.Usage})
			case command.StringSourceSlice, command.String:
				clientCommand.Flags = append(clientCommand.Flags, cli.StringSliceFlag{Name: argument.Name, Usage: argument.Usage})
			}
		}
		c = append(c, clientCommand)
	}
	return c
}

func runCommand(c *cli.Context) error {
	var (
		factory       = command.GetFactory()
		clientContext = c.Args()
	)
	if c.Command.Name == "" {
		return errors.New("command required")
	}

	definition, ok := factory.GetDefinition(c.Command.Name)
	if !ok {
		return fmt.Errorf("unrecognized command %s", c.Command.Name)
	}

	cmd, err := factory.Get(c.Command.Name)
	if err != nil {
		return err
	}

	profile, err := loadProfile(c.GlobalString("config"))
	if err != nil {
		return err
	}
	applyProfile(profile, c)

	// Get argument count.
	argc := c.NArg()
	fileCount := 0

	input := make([]command.Input, 0)
	output := command.Output{Writer: os.Stdout, Error: os.Stderr}

	// Check for pipe usage.
	pipe, err := os.Stdin.Stat()
	if err != nil {
		panic(err)
	} else if (pipe.Mode() & os.ModeNamedPipe) != 0 {
		if argc > 0 {
			return errors.New("file arguments and input pipes cannot be used simultaneously")
		}

		args, err := command.MakeCommandArgumentCollection(0, getArgumentMap(definition, c), definition)
		if err != nil {
			return err
		}
		log, err := source.NewLog(os.Stdin)
		if err != nil {
			return err
		}
		fileCount = 1
		input = append(input, command.Input{
			Arguments: args,
			Name:      "stdin",
			Length:    int64(0),
			Reader:    parser.NewReader(log),
		})
	}

	// Loop through each argument and add files to the command.
	for index := 0; index < argc; index += 1 {
		path := clientContext.Get(index)
		size := int64(0)

		if s, err := os.Stat(path); os.IsNotExist(err) {
			util.Debug("%s skipped (%s)", path, err)
			continue
		} else {
			size = s.Size()
		}

		file, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return err
		}
		log, err := source.NewLog(file)
		if err != nil {
			file.Close()
			return err
		}

		args, err := command.MakeCommandArgumentCollection(index, getArgumentMap(definition, c), definition)
		if err != nil {
			return err
		}

		fileCount += 1
		input = append(input, command.Input{
			Arguments: args,
			Name:      filepath.Base(path),
			Length:    size,
			Reader:    parser.NewReader(log),
		})
	}

	if err := checkClientCommands(c, fileCount, definition); err != nil {
		return err
	}

	return command.RunCommand(cmd, input, output)
}

func applyProfile(profile Profile, c *cli.Context) {
	if profile.NoColor {
		color.NoColor = true
	}
	if profile.Verbose || c.GlobalBool("verbose") {
		util.EnableDebug()
	}
}

func getArgumentMap(definition command.Definition, c *cli.Context) map[string]interface{} {
	out := make(map[string]interface{})
	for _, arg := range definition.Flags {
		if c.IsSet(arg.Name) {
			switch arg.Type {
			case command.Bool:
				out[arg.Name] = c.Bool(arg.Name)
			case command.Int:
				out[arg.Name] = c.Int(arg.Name)
			case command.IntSourceSlice:
				out[arg.Name] = c.IntSlice(arg.Name)
			case command.String, command.StringSourceSlice:
				out[arg.Name] = c.StringSlice(arg.Name)
			}
		}
	}
	return out
}
