// Command chat-client is a small interactive client for talking to Marta
// through the HTTP chat endpoint.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/tibino/marta/messages"
)

func main() {
	baseURL := os.Getenv("MARTA_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &http.Client{Timeout: 10 * time.Second}
	scanner := bufio.NewScanner(os.Stdin)
	sessionID := ""

	fmt.Println("Talking to Marta at", baseURL, "(ctrl-D to quit)")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		body, err := messages.Marshal(messages.ChatRequest{SessionID: sessionID, Text: text})
		if err != nil {
			log.Fatalf("encode request: %v", err)
		}

		resp, err := client.Post(baseURL+"/chat", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("request failed: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			log.Fatalf("read response: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("server returned %s: %s", resp.Status, data)
			continue
		}

		var reply messages.ChatResponse
		if err := messages.Unmarshal(data, &reply); err != nil {
			log.Fatalf("decode response: %v", err)
		}
		sessionID = reply.SessionID
		fmt.Println(reply.Text)
	}
}
