package server

import (
	"context"
	"errors"

	"nba-bot/internal/bot"
	"nba-bot/internal/chat"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CommandProcedure is the connect path of the unary Command RPC.
const CommandProcedure = "/nbabot.v1.BotService/Command"

type Dispatcher interface {
	Dispatch(ctx context.Context, text string) (string, error)
}

type DirectoryStatus interface {
	Loaded() bool
}

type BotServer struct {
	dispatcher Dispatcher
	sender     chat.Sender
	directory  DirectoryStatus
	logger     zerolog.Logger
}

func NewBotServer(dispatcher Dispatcher, sender chat.Sender, directory DirectoryStatus, logger zerolog.Logger) *BotServer {
	return &BotServer{dispatcher: dispatcher, sender: sender, directory: directory, logger: logger}
}

// Command answers one command and returns the reply text without sending it anywhere.
func (s *BotServer) Command(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[wrapperspb.StringValue], error) {
	reply, err := s.dispatcher.Dispatch(ctx, req.Msg.GetValue())
	if errors.Is(err, bot.ErrNoRoute) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("command failed")
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(wrapperspb.String(reply)), nil
}

func (s *BotServer) NewCommandHandler(opts ...connect.HandlerOption) (string, *connect.Handler) {
	return CommandProcedure, connect.NewUnaryHandler(CommandProcedure, s.Command, opts...)
}
