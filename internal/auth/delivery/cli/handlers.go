package cli

import (
	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"

	"github.com/spf13/cobra"
)

func (h *handler) Login(cmd *cobra.Command, req loginReq) error {
	ctx := cmd.Context()

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "auth.delivery.cli.Login: %v", err)
		return err
	}

	w := cmd.OutOrStdout()
	console.Success(w, i18n.FromContext(cmd.Context(), i18n.MsgLoginOK, nil))
	console.Fields(w, sessionFields(out.Session.UserID, out.Session.OpenID, out.Session.ExpiresAt)...)
	if out.NeedsBinding {
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgBindHint, nil))
		return nil
	}
	console.Fields(w, companyFields(out.Profile)...)
	return nil
}

func (h *handler) Logout(cmd *cobra.Command, _ []string) error {
	if err := h.uc.Logout(cmd.Context()); err != nil {
		return err
	}
	console.Success(cmd.OutOrStdout(), i18n.FromContext(cmd.Context(), i18n.MsgLoggedOut, nil))
	return nil
}

func (h *handler) WhoAmI(cmd *cobra.Command, _ []string) error {
	st, err := h.uc.Status(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case st.LoggedIn:
		console.Fields(w, sessionFields(st.UserID, st.OpenID, st.ExpiresAt)...)
	case st.Expired:
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgAuthExpired, nil))
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgLoginHint, nil))
	default:
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgNotLoggedIn, nil))
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgLoginHint, nil))
	}
	return nil
}

func (h *handler) Bind(cmd *cobra.Command, args []string) error {
	out, err := h.uc.BindCompany(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	console.Success(w, i18n.FromContext(cmd.Context(), i18n.MsgBindOK, map[string]any{"Company": out.Company.CompanyName}))
	if out.Message != "" {
		console.Hint(w, out.Message)
	}
	return nil
}

func (h *handler) Profile(cmd *cobra.Command, _ []string) error {
	p, err := h.uc.Profile(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !p.IsBound() {
		console.Hint(w, i18n.FromContext(cmd.Context(), i18n.MsgNotBound, nil))
		return nil
	}
	console.Fields(w, companyFields(p)...)
	return nil
}
