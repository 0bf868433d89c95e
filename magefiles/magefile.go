//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	templDir  = "./internal/templates"
	staticDir = "./web/static"
)

// Dbup runs dbmate to apply db migrations
func Dbup() error {
	if _, err := exec.LookPath("dbmate"); err != nil {
		fmt.Println(">> dbmate not found; install with:")
		fmt.Println("   go install github.com/amacneil/dbmate/v2@latest")
		return err
	}
	fmt.Println(">> dbmate up")
	return sh.Run("dbmate", "up")
}

// Generate runs templ generate targeting the templates directory.
// This must be run before Build any time a .templ file changes.
func Generate() error {
	if _, err := exec.LookPath("templ"); err != nil {
		fmt.Println(">> templ not found; install with:")
		fmt.Println("   go install github.com/a-h/templ/cmd/templ@v0.3.1001")
		return err
	}
	fmt.Println(">> templ generate", templDir)
	return sh.Run("templ", "generate", templDir)
}

// Build generates templ output, tidies deps, then compiles the CLI to
// ./bin/palmwatch.
func Build() error {
	mg.Deps(Generate, Tidy)
	fmt.Println(">> Building palmwatch...")
	return sh.Run("go", "build", "-o", "bin/palmwatch", "./cmd/palmwatch")
}

// BuildWasm compiles the browser controller into web/static and copies Go's
// wasm_exec.js next to it. PALMWATCH_PROFILE picks the page it drives.
func BuildWasm() error {
	mg.Deps(Generate)
	profile := os.Getenv("PALMWATCH_PROFILE")
	if profile == "" {
		profile = "dashboard"
	}
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return err
	}
	fmt.Println(">> Building palmwatch.wasm for profile", profile)
	env := map[string]string{"GOOS": "js", "GOARCH": "wasm"}
	if err := sh.RunWith(env, "go", "build",
		"-ldflags", "-X main.profileName="+profile,
		"-o", filepath.Join(staticDir, "palmwatch.wasm"), "./cmd/palmwatch-wasm"); err != nil {
		return err
	}

	goroot, err := sh.Output("go", "env", "GOROOT")
	if err != nil {
		return err
	}
	loader := filepath.Join(strings.TrimSpace(goroot), "lib", "wasm", "wasm_exec.js")
	return sh.Copy(filepath.Join(staticDir, "wasm_exec.js"), loader)
}

// Serve builds both binaries and starts the page host.
func Serve() error {
	mg.Deps(Build, BuildWasm)
	fmt.Println(">> Starting palmwatch serve ...")
	return sh.RunV("./bin/palmwatch", "serve")
}

// Submit builds then posts the stored form once.
func Submit() error {
	mg.Deps(Build)
	return sh.RunV("./bin/palmwatch", "submit")
}

// Watch runs templ generate --watch in the background and the page host in
// the foreground. Ctrl-C stops both.
func Watch() error {
	mg.Deps(Generate, BuildWasm)

	fmt.Println(">> Starting templ watcher...")
	watcher := exec.Command("templ", "generate", "--watch", "-f", templDir)
	watcher.Stdout = os.Stdout
	watcher.Stderr = os.Stderr
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start templ watcher: %w", err)
	}

	fmt.Println(">> Starting palmwatch serve (go run)...")
	server := exec.Command("go", "run", "./cmd/palmwatch", "serve")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	if err := server.Start(); err != nil {
		watcher.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	watcher.Process.Kill()
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test generates templates then runs all unit tests.
func Test() error {
	mg.Deps(Generate)
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts, the compiled wasm, generated templ files and
// the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.RemoveAll("bin")
	if err := sh.Run("find", templDir, "-name", "*_templ.go", "-delete"); err != nil {
		return err
	}
	os.Remove(filepath.Join(staticDir, "palmwatch.wasm"))
	os.Remove(filepath.Join(staticDir, "wasm_exec.js"))
	db := os.Getenv("DB_PATH")
	if db == "" {
		db = "palmwatch.db"
	}
	if err := os.Remove(db); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Install builds and installs the CLI to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.Run("go", "install", "./cmd/palmwatch")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
