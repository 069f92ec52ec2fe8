package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type AddUserCmd struct {
	ConfigFile string `default:".foodgram.toml" help:"Path to config file" short:"c"`
	Email      string `arg:""                   help:"Email the user signs in with"`
	Username   string `arg:""                   help:"Username"`
	FirstName  string `help:"First name"`
	LastName   string `help:"Last name"`
	Staff      bool   `help:"Allow the user to edit every recipe"`
}

func (a *AddUserCmd) Run(ctx *Context) error {
	logger := adminLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(a.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	user, err := repo.AddUser(context.Background(), model.User{
		Email:     a.Email,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		IsStaff:   a.Staff,
	})
	if err != nil {
		logger.Error("error adding user", zap.Error(err))

		return err
	}

	logger.Info("user added", zap.Stringer("user", user))

	return nil
}
