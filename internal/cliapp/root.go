package cliapp

import (
	"context"
	"errors"

	authCLI "orderdesk/internal/auth/delivery/cli"
	errorlogCLI "orderdesk/internal/errorlog/delivery/cli"
	messageCLI "orderdesk/internal/message/delivery/cli"
	orderCLI "orderdesk/internal/order/delivery/cli"
	systemCLI "orderdesk/internal/system/delivery/cli"
	uploadCLI "orderdesk/internal/upload/delivery/cli"
	"orderdesk/pkg/console"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/i18n"
	"orderdesk/pkg/locale"
	"orderdesk/pkg/session"

	"github.com/spf13/cobra"
)

// RootCommand builds the command tree with every domain's commands attached.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "orderdesk",
		Short:         "Track orders, materials and messages in the company ERP",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.lang = locale.ParseLang(a.lang)
			cmd.SetContext(locale.SetLocaleToContext(cmd.Context(), a.lang))
		},
	}
	root.PersistentFlags().StringVar(&a.lang, "lang", a.lang, "message language (zh, en)")
	root.SetOut(a.out)
	root.SetErr(a.errW)

	root.AddCommand(authCLI.New(a.l, a.authUC).Commands()...)
	root.AddCommand(orderCLI.New(a.l, a.orderUC).Commands()...)
	root.AddCommand(messageCLI.New(a.l, a.messageUC).Commands()...)
	root.AddCommand(uploadCLI.New(a.l, a.uploadUC, a.fs).Commands()...)
	root.AddCommand(errorlogCLI.New(a.l, a.errorlogUC).Commands()...)
	root.AddCommand(systemCLI.New(a.l, a.systemUC).Commands()...)

	return root
}

// Execute runs args and returns the process exit code. Failures are printed as a toast.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(locale.SetLocaleToContext(ctx, a.lang))
	if err == nil {
		return 0
	}

	lang := locale.ParseLang(a.lang)
	console.Fail(a.errW, i18n.Toast(lang, err), err.Error())
	if errors.Is(err, session.ErrNotLoggedIn) || errors.Is(err, pkghttp.ErrAuthExpired) {
		a.nav.GoToLogin(locale.SetLocaleToContext(ctx, lang))
	}
	return 1
}

// LoginRequired reports whether the last run ended on the login entry point.
func (a *App) LoginRequired() bool {
	return a.nav.LoginRequired()
}
