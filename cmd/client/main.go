package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/tuannm99/toysql/internal"
)

const (
	prompt     = "toysql> "
	contPrompt = "   ...> "
)

func defaultHistoryPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return name
	}
	return filepath.Join(home, name)
}

func main() {
	var (
		cfgPath    = flag.String("config", "", "config file (yaml)")
		addr       = flag.String("addr", "", "server address (overrides config)")
		local      = flag.Bool("local", false, "run an embedded in-memory engine instead of connecting")
		token      = flag.String("token", os.Getenv("TOYSQL_TOKEN"), "JWT presented to the server")
		timeout    = flag.Duration("timeout", 3*time.Second, "dial timeout")
		oneShotSQL = flag.String("c", "", "execute SQL and exit (statements end with ';')")
	)
	flag.Parse()

	cfg, err := internal.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addr == "" {
		*addr = cfg.Server.Addr
	}

	var sess session
	if *local {
		sess, err = newLocalSession(cfg.Engine.StatementCacheSize)
	} else {
		sess, err = dialSession(*addr, *token, *timeout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = sess.Close() }()

	histPath := cfg.Client.History
	if histPath != "" && !filepath.IsAbs(histPath) {
		histPath = defaultHistoryPath(histPath)
	}
	r := &repl{sess: sess, hist: NewHistory(histPath), out: os.Stdout}

	// one-shot mode
	if strings.TrimSpace(*oneShotSQL) != "" {
		results, err := sess.Exec(*oneShotSQL)
		for _, res := range results {
			printResult(os.Stdout, res)
		}
		if err != nil {
			printError(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	_ = r.hist.Load(cfg.Client.HistoryMax)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	for _, line := range r.hist.Lines() {
		_ = rl.SaveHistory(line)
	}

	if *local {
		fmt.Println("running embedded in-memory engine")
	} else {
		fmt.Printf("connected to %s\n", *addr)
	}
	fmt.Println("type \\help for help")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C clears the current buffer
			if r.pending() {
				r.reset()
				rl.SetPrompt(prompt)
			}
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return
		}

		if strings.TrimSpace(line) == "" && !r.pending() {
			continue
		}
		if !r.pending() && isMetaCommand(line) {
			if r.meta(line) {
				return
			}
			continue
		}

		stmt := r.feed(line)
		if stmt == "" {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(prompt)
		_ = rl.SaveHistory(compactOneLine(stmt))
		r.run(stmt)
	}
}
