package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"jobwatch/internal/config"
	"jobwatch/internal/poll"
	"jobwatch/internal/secrets"
	"jobwatch/internal/store"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "init":
			os.Exit(runInit(args[1:]))
		case "secret":
			os.Exit(runSecret(args[1:]))
		case "run":
			args = args[1:]
		}
	}
	os.Exit(runWatch(args))
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("jobwatch", flag.ContinueOnError)
	cfgPath := fs.String("config", "jobwatch.yml", "config file (.yml or .toml)")
	envPath := fs.String("env", ".env", "dotenv file with email credentials")
	every := fs.Duration("every", 0, "repeat the run on this interval (0 = run once)")
	once := fs.Bool("once", false, "run a single pass even when -every is set")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.LoadDotEnv(*envPath); err != nil {
		log.Printf("[!] ignoring %s: %v", *envPath, err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("[!] config load failed (%s): %v", *cfgPath, err)
		return 1
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[!] config: %s", w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			log.Printf("[!] config: %s", e)
		}
		return 1
	}

	lock, err := store.AcquireRunLock(cfg.Paths.Lock)
	if errors.Is(err, store.ErrLocked) {
		log.Printf("[!] another run holds %s; exiting", cfg.Paths.Lock)
		return 0
	}
	if err != nil {
		log.Printf("[!] %v", err)
		return 1
	}
	defer lock.Release()

	runner, closeFn, err := buildRunner(cfg, config.CredentialsFromEnv())
	if err != nil {
		log.Printf("[!] %v", err)
		return 1
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *every > 0 && !*once {
		err = poll.StartPoller(ctx, runner, *every)
	} else {
		err = poll.RunLogged(ctx, runner)
	}
	if err != nil {
		return 1
	}
	return 0
}

func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	cfgPath := fs.String("config", "jobwatch.yml", "config file to create")
	_ = fs.Parse(args)

	created, err := config.EnsureConfig(*cfgPath)
	if err != nil {
		log.Printf("[!] init: %v", err)
		return 1
	}
	if created {
		log.Printf("[+] wrote %s", *cfgPath)
	} else {
		log.Printf("[i] %s already exists", *cfgPath)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("[!] init: %v", err)
		return 1
	}
	if _, err := os.Stat(cfg.Paths.Companies); errors.Is(err, os.ErrNotExist) {
		if err := store.SaveJSON(cfg.Paths.Companies, exampleCompanies); err != nil {
			log.Printf("[!] init: %v", err)
			return 1
		}
		log.Printf("[+] wrote %s", cfg.Paths.Companies)
	}
	return 0
}

func runSecret(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: jobwatch secret set|delete")
		return 2
	}

	switch args[0] {
	case "set":
		fmt.Fprint(os.Stderr, "SendGrid API key: ")
		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() {
			log.Printf("[!] no key read from stdin")
			return 1
		}
		if err := secrets.SetAPIKey(strings.TrimSpace(sc.Text())); err != nil {
			log.Printf("[!] secret set: %v", err)
			return 1
		}
		log.Printf("[+] API key stored in keychain (service=%s)", secrets.KeyringService)
	case "delete":
		if err := secrets.DeleteAPIKey(); err != nil {
			log.Printf("[!] secret delete: %v", err)
			return 1
		}
		log.Printf("[+] API key removed from keychain")
	default:
		fmt.Fprintf(os.Stderr, "unknown secret command %q\n", args[0])
		return 2
	}
	return 0
}
