// File: cmd/flipper-terminal/main.go
//go:build linux

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"golang.org/x/net/websocket"

	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/render"
)

const (
	flipperHold = 150 * time.Millisecond
	frameGap    = 33 * time.Millisecond
)

// client holds the socket and the latest snapshot the server sent.
type client struct {
	conn *websocket.Conn
	cols int
	rows int

	mu   sync.Mutex
	last game.Snapshot
	seen bool
}

func (c *client) send(input game.ClientInput) error {
	return websocket.JSON.Send(c.conn, input)
}

func (c *client) charging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen && c.last.State.Charge.Charging
}

// readLoop draws every state message, at most one per frameGap.
func (c *client) readLoop() {
	helpers.ClearScreen()
	var lastDraw time.Time
	for {
		var data []byte
		if err := websocket.Message.Receive(c.conn, &data); err != nil {
			fmt.Print("Error reading from server: ", err, "\r\n")
			return
		}

		var header game.MessageHeader
		if err := json.Unmarshal(data, &header); err != nil {
			continue
		}
		switch header.MessageType {
		case "state":
			var message game.StateMessage
			if err := json.Unmarshal(data, &message); err != nil {
				continue
			}
			c.mu.Lock()
			c.last, c.seen = message.State, true
			c.mu.Unlock()

			if time.Since(lastDraw) < frameGap && message.State.State.IsPlaying {
				continue
			}
			lastDraw = time.Now()
			fmt.Print("\033[H", render.RenderSnapshotANSI(message.State, c.cols, c.rows))
		case "gameOver":
			var message game.GameOverMessage
			if err := json.Unmarshal(data, &message); err == nil {
				fmt.Printf("\r\nGame over: %d - %d. Press r to restart.\r\n", message.Scores[0], message.Scores[1])
			}
		}
	}
}

// tapFlipper raises a flipper and drops it again after flipperHold. Raw terminals
// only report key presses, never releases.
func (c *client) tapFlipper(side string) error {
	if err := c.send(game.ClientInput{Type: "flipper", Side: side, Active: true}); err != nil {
		return err
	}
	time.AfterFunc(flipperHold, func() {
		if err := c.send(game.ClientInput{Type: "flipper", Side: side, Active: false}); err != nil {
			fmt.Print("Error sending to server: ", err, "\r\n")
		}
	})
	return nil
}

func main() {
	addr := flag.String("addr", "ws://localhost:3001/subscribe", "server websocket URL")
	origin := flag.String("origin", "http://localhost/", "websocket origin header")
	cols := flag.Int("cols", 60, "render width in characters")
	rows := flag.Int("rows", 40, "render height in characters")
	flag.Parse()

	websocketConnection, err := websocket.Dial(*addr, "", *origin)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer websocketConnection.Close()

	c := &client{conn: websocketConnection, cols: *cols, rows: *rows}
	go c.readLoop()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	defer restoreMode(os.Stdin.Fd(), savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		restoreMode(os.Stdin.Fd(), savedTerminalSettings)
		os.Exit(0)
	}()

	singleByteBuffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}

		var sendErr error
		switch singleByteBuffer[0] {
		case 'a', 'A':
			sendErr = c.tapFlipper("left")
		case 'd', 'D':
			sendErr = c.tapFlipper("right")
		case ' ':
			if c.charging() {
				sendErr = c.send(game.ClientInput{Type: "release"})
			} else {
				sendErr = c.send(game.ClientInput{Type: "charge"})
			}
		case 'r', 'R':
			sendErr = c.send(game.ClientInput{Type: "restart"})
		case 'p', 'P':
			sendErr = c.send(game.ClientInput{Type: "pause"})
		case 'q', 'Q', 3:
			fmt.Print("Quitting game\r\n")
			return
		}

		if sendErr != nil {
			fmt.Print("Error sending to server: ", sendErr, "\r\n")
			return
		}
	}
}
