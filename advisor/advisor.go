// Package advisor implements the interactive savings coach, a Gemini-backed
// chat seeded with the user's current reports.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `
You are a friendly savings coach for a spare-change savings application.
The user rounds up everyday purchases and sets the difference aside, and
their contributions grow at a modest simple interest rate.

Their current reports are given below. Answer questions about their savings,
explain how the figures were computed when asked, and suggest small, concrete
habits to grow the balance. Keep answers short and avoid jargon.

Never present yourself as a licensed financial advisor and never recommend
specific securities or financial products.
`

// Coach is the chat session with the savings coach.
type Coach struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Coach writing its output to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Coach {
	return &Coach{w: w, r: bufio.NewReader(r)}
}

// Start creates the Gemini chat, seeding the system instruction with the
// briefing (the user's rendered reports).
func (c *Coach) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt + "\n" + briefing}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	c.chat = chat
	return nil
}

// Ask sends one question to the coach and returns its answer.
func (c *Coach) Ask(ctx context.Context, question string) (string, error) {
	resp, err := c.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the coach")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the coach.
func (c *Coach) Run(ctx context.Context, client *genai.Client, briefing string, prompts ...string) error {
	if c.chat == nil {
		if err := c.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.w, "Welcome to scs savings assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(c.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := c.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.w, answer)
	}
}
