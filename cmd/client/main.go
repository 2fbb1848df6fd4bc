// Command client sends one control command to a bridge and prints the
// response.
//
//	client -s 127.0.0.1:4001 -k secret add 1001 password
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/client"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	server := fs.StringP("server", "s", common.DefaultListenAddr, "bridge control address")
	key := fs.StringP("key", "k", "", "shared secret (prompted when empty)")
	timeout := fs.DurationP("timeout", "t", 10*time.Second, "request timeout")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: client [flags] <command> [args]\n\n%s\n\nflags:\n%s", client.Usage, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	req, err := client.BuildRequest(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 2
	}

	if *key == "" {
		if *key, err = client.PromptKey(os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	c := client.New(*server, *key, quartz.NewReal(), *timeout)
	resp, err := c.Do(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if resp.Code != protocol.CodeOK {
		fmt.Fprintf(os.Stderr, "%s (code %d)\n", resp.Code, resp.Code)
		return 1
	}

	var out bytes.Buffer
	if err := json.Indent(&out, resp.Data, "", "  "); err != nil {
		out.Reset()
		out.Write(resp.Data)
	}
	fmt.Println(out.String())
	return 0
}
