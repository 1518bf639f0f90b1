package main

import (
	"flag"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
)

var (
	serverAddr     = flag.String("addr", "http://127.0.0.1:8000", "serve address")
	boardSizeConf  = flag.Int("BoardSize", chess.DefaultBoardSize, "board size")
	difficultyConf = flag.String("Difficulty", "", "opponent difficulty (easy/medium/hard)")
	aiConf         = model.On
	colorConf      = model.On
)

func init() {
	flag.Var(&aiConf, "AI", "play against the automated opponent (on/off)")
	flag.Var(&colorConf, "Color", "colour board output (on/off)")
}

func opponentName() string {
	if aiConf {
		return chess.AutomatedOpponent.String()
	}
	return chess.HumanOpponent.String()
}
