package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(load Loader, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Verifica token e conta de anúncios da Meta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, load, func(rt *Runtime) error {
				health, err := rt.HealthChecker.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}

				if opts.isJSON() {
					return printJSON(cmd.OutOrStdout(), health, opts.pretty)
				}

				warning := ""
				if health.Token.ExpirationWarning != nil {
					warning = *health.Token.ExpirationWarning
				}

				return printKeyValue(cmd.OutOrStdout(), [][]string{
					{"Status", health.Status},
					{"Mensagem", health.Message},
					{"Token", health.Token.Type},
					{"Expira em", health.Token.ExpiresIn},
					{"Aviso", warning},
					{"Conta", health.Account.ID},
					{"Nome", health.Account.Name},
					{"Situação", health.Account.Status},
					{"Moeda", health.Account.Currency},
				})
			})
		},
	}
}
