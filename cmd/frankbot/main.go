package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/zeromicro/go-zero/core/logx"

	"frank-api/pkg/confkit"
)

// Discord caps messages at 2000 characters; longer replies are truncated.
const (
	commandPrefix   = "!ask"
	maxMessageRunes = 2000
	defaultAPIURL   = "http://localhost:8888/query"
)

type queryRequest struct {
	Prompt string `json:"prompt"`
}

type queryResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func main() {
	confkit.LoadDotenvOnce()

	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		logx.Must(fmt.Errorf("DISCORD_BOT_TOKEN is required"))
	}
	apiURL := os.Getenv("FRANK_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		logx.Must(fmt.Errorf("create discord session: %w", err))
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	relay := &relayHandler{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	session.AddHandler(relay.onMessage)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logx.Infof("frank is online as %s", s.State.User.Username)
	})

	if err := session.Open(); err != nil {
		logx.Must(fmt.Errorf("open discord gateway: %w", err))
	}
	defer session.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logx.Info("shutting down")
}

type relayHandler struct {
	apiURL     string
	httpClient *http.Client
}

func (h *relayHandler) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}
	prompt := strings.TrimSpace(strings.TrimPrefix(m.Content, commandPrefix))

	_, _ = s.ChannelMessageSend(m.ChannelID, "Hmm...")

	reply, err := h.query(prompt)
	if err != nil {
		logx.Errorf("frankbot: query failed: %v", err)
		_, _ = s.ChannelMessageSend(m.ChannelID, "Something went wrong.")
		return
	}
	_, _ = s.ChannelMessageSend(m.ChannelID, truncate(reply, maxMessageRunes))
}

func (h *relayHandler) query(prompt string) (string, error) {
	payload, err := json.Marshal(queryRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}

	resp, err := h.httpClient.Post(h.apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("post query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read query response: %w", err)
	}

	var parsed queryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode query response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("backend error: %s", parsed.Error)
	}
	return parsed.Response, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
