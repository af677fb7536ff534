// Command ideagen is an interactive client for the generation stream. It
// logs into a running server, streams content drafts for prompts typed at
// the REPL, and shows how the finished response classifies and renders.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"ideavault/internal/domain/models/richtext"
	"ideavault/internal/stream"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type cli struct {
	ctx     context.Context
	session *stream.Session
	scanner *bufio.Scanner
}

func main() {
	serverURL := flag.String("server", "http://localhost:3000", "Server base URL")
	email := flag.String("email", "demo@ideavault.dev", "Account email")
	password := flag.String("password", "demo-password-123", "Account password")
	flag.Parse()

	token, err := login(*serverURL, *email, *password)
	if err != nil {
		fmt.Printf("%sLogin failed: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	fmt.Printf("%sLogged in as %s%s\n", colorGreen, *email, colorReset)

	client := stream.NewClient(*serverURL+"/v1/ideas/AIIdeaContent", nil)
	c := &cli{
		ctx:     context.Background(),
		session: stream.NewSession(client, token, nil, nil),
		scanner: bufio.NewScanner(os.Stdin),
	}
	c.run()
}

func login(serverURL, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(serverURL+"/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("no token in response")
	}
	return result.Token, nil
}

func (c *cli) run() {
	fmt.Printf("%sCommands: gen <prompt>, show, platforms, select <key>, tips, quit%s\n", colorCyan, colorReset)

	for {
		fmt.Printf("%s> %s", colorBlue, colorReset)
		if !c.scanner.Scan() {
			return
		}
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "gen":
			c.generate(strings.TrimSpace(arg))
		case "show":
			c.show()
		case "platforms":
			c.platforms()
		case "select":
			c.selectPlatform(strings.TrimSpace(arg))
		case "tips":
			c.tips()
		case "quit", "exit":
			return
		default:
			fmt.Printf("%sUnknown command: %s%s\n", colorYellow, cmd, colorReset)
		}
	}
}

func (c *cli) generate(prompt string) {
	if prompt == "" {
		fmt.Printf("%sUsage: gen <prompt>%s\n", colorYellow, colorReset)
		return
	}

	var lastLen int
	err := c.session.Generate(c.ctx, prompt, func(full string) {
		// Print only the newly arrived tail
		fmt.Print(full[lastLen:])
		lastLen = len(full)
	})
	fmt.Println()

	if err != nil {
		fmt.Printf("%sGeneration failed: %v%s\n", colorRed, err, colorReset)
		return
	}

	if resp := c.session.Response(); resp != nil && c.session.Platform() != "" {
		fmt.Printf("%sStructured response with %d platform(s); showing %q%s\n",
			colorGreen, len(resp.Platforms), c.session.Platform(), colorReset)
	} else {
		fmt.Printf("%sProse response mapped into the document%s\n", colorGreen, colorReset)
	}
}

func (c *cli) show() {
	content := c.session.Content()
	if len(content) == 0 {
		fmt.Printf("%sDocument is empty%s\n", colorYellow, colorReset)
		return
	}
	fmt.Println(richtext.PlainText(content))
}

func (c *cli) platforms() {
	resp := c.session.Response()
	if resp == nil || len(resp.Platforms) == 0 {
		fmt.Printf("%sNo structured content yet%s\n", colorYellow, colorReset)
		return
	}

	keys := resp.PlatformKeys()
	sort.Strings(keys)
	for _, key := range keys {
		marker := " "
		if key == c.session.Platform() {
			marker = "*"
		}
		fmt.Printf("%s %s%s%s\n", marker, colorCyan, key, colorReset)
	}
}

func (c *cli) selectPlatform(key string) {
	if key == "" {
		fmt.Printf("%sUsage: select <platform>%s\n", colorYellow, colorReset)
		return
	}
	if err := c.session.SelectPlatform(key); err != nil {
		fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
		return
	}
	c.show()
}

func (c *cli) tips() {
	resp := c.session.Response()
	if resp == nil || len(resp.GeneralTips) == 0 {
		fmt.Printf("%sNo general tips yet%s\n", colorYellow, colorReset)
		return
	}
	for i, tip := range resp.GeneralTips {
		fmt.Printf("%s%d.%s %s\n", colorGreen, i+1, colorReset, tip)
	}
}
