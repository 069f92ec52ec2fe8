package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve        ServeCmd        `cmd:"" default:"1"                                           help:"Run the server"`
	Migrate      MigrateCmd      `cmd:"" help:"Run database migrations"`
	LoadData     LoadDataCmd     `cmd:"" help:"Load the tag and ingredient catalogs"`
	AddUser      AddUserCmd      `cmd:"" help:"Create a user"`
	ImportRecipe ImportRecipeCmd `cmd:"" help:"Import a recipe from a schema.org recipe page"`
}

// adminLogger is the logger used by the one-shot admin commands.
func adminLogger(ctx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
