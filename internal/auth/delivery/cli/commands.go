package cli

import (
	"github.com/spf13/cobra"
)

func (h *handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.loginCommand(),
		h.logoutCommand(),
		h.whoamiCommand(),
		h.bindCommand(),
		h.profileCommand(),
	}
}

func (h *handler) loginCommand() *cobra.Command {
	var req loginReq
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a one-time code and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.Login(cmd, req)
		},
	}
	cmd.Flags().StringVar(&req.Code, "code", "", "one-time login code")
	cmd.Flags().StringVar(&req.NickName, "nick", "", "display name sent with the login")
	cmd.Flags().StringVar(&req.AvatarURL, "avatar", "", "avatar URL sent with the login")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func (h *handler) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE:  h.Logout,
	}
}

func (h *handler) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session without calling the server",
		Args:  cobra.NoArgs,
		RunE:  h.WhoAmI,
	}
}

func (h *handler) bindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <invite-code>",
		Short: "Bind the account to a company with an invite code",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Bind,
	}
}

func (h *handler) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the company the account is bound to",
		Args:  cobra.NoArgs,
		RunE:  h.Profile,
	}
}
