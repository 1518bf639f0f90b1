package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	flag.Parse()
	logx.DisableStat()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := NewClient(*serverAddr)
	status, err := client.Create(ctx, *boardSizeConf, opponentName(), *difficultyConf)
	if err != nil {
		logx.Must(err)
	}
	defer func() {
		if err := client.Delete(context.Background()); err != nil {
			logx.Error(err)
		}
	}()

	fmt.Printf("Game %s, %dx%d, you play red.\n", status.ID, status.Snapshot.BoardSize, status.Snapshot.BoardSize)
	printBoard(ctx, client)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		var text string
		select {
		case <-ctx.Done():
			return
		case t, ok := <-lines:
			if !ok {
				return
			}
			text = t
		}

		cmd, err := parseCommand(text)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if cmd.kind == cmdQuit {
			return
		}
		if err := run(ctx, client, cmd); err != nil {
			fmt.Println(err)
		}
	}
}

func run(ctx context.Context, client *Client, cmd command) error {
	var (
		resp moveResponse
		err  error
	)

	switch cmd.kind {
	case cmdMove:
		resp, err = client.Move(ctx, cmd.line)
	case cmdUndo:
		resp, err = client.Undo(ctx)
	case cmdRedo:
		resp, err = client.Redo(ctx)
	case cmdRestart:
		_, err = client.Restart(ctx, cmd.size)
		if err == nil {
			printBoard(ctx, client)
		}
		return err
	case cmdBoard:
		printBoard(ctx, client)
		return nil
	}
	if err != nil {
		return err
	}

	if !resp.Applied {
		fmt.Println(resp.Reason)
	}
	printBoard(ctx, client)
	return nil
}

func printBoard(ctx context.Context, client *Client) {
	board, err := client.Board(ctx, bool(colorConf))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(board)
}
