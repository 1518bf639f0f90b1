package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

var errUnknownCommand = errors.New("unknown command, try a line like 0,1,2 or undo, redo, restart [size], board, quit")

type commandKind int

const (
	cmdMove commandKind = iota
	cmdUndo
	cmdRedo
	cmdRestart
	cmdBoard
	cmdQuit
)

type command struct {
	kind commandKind
	line chess.Line
	size int
}

func parseCommand(s string) (command, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return command{kind: cmdBoard}, nil
	}

	switch fields[0] {
	case "undo", "u":
		return command{kind: cmdUndo}, nil
	case "redo", "r":
		return command{kind: cmdRedo}, nil
	case "board", "b":
		return command{kind: cmdBoard}, nil
	case "quit", "exit", "q":
		return command{kind: cmdQuit}, nil
	case "restart":
		cmd := command{kind: cmdRestart}
		if len(fields) > 1 {
			size, err := strconv.Atoi(fields[1])
			if err != nil {
				return command{}, fmt.Errorf("restart size: %w", err)
			}
			cmd.size = size
		}
		return cmd, nil
	}

	l, err := chess.ParseLine(fields[0])
	if err != nil {
		return command{}, errUnknownCommand
	}
	return command{kind: cmdMove, line: l}, nil
}
