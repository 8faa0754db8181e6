package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

type adsListFlags struct {
	status string
	from   string
	to     string
	search string
}

func newAdsCmd(load Loader, opts *options) *cobra.Command {
	ads := &cobra.Command{
		Use:   "ads",
		Short: "Anúncios monitorados",
	}

	listFlags := &adsListFlags{}
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista os anúncios normalizados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := domain.NewAdFilters(listFlags.status, listFlags.from, listFlags.to, listFlags.search)
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				response, err := rt.Fetcher.FetchAds(cmd.Context(), filters)
				if err != nil {
					return err
				}

				if opts.isJSON() {
					return printJSON(cmd.OutOrStdout(), response, opts.pretty)
				}
				headers, rows := adsTable(response.Ads)
				return printTable(cmd.OutOrStdout(), headers, rows)
			})
		},
	}
	bindFilterFlags(list, listFlags)

	overviewFlags := &adsListFlags{}
	overview := &cobra.Command{
		Use:   "overview",
		Short: "Mostra os totais do painel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := domain.NewAdFilters(overviewFlags.status, overviewFlags.from, overviewFlags.to, overviewFlags.search)
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				summary, err := rt.Fetcher.Overview(cmd.Context(), filters)
				if err != nil {
					return err
				}

				if opts.isJSON() {
					return printJSON(cmd.OutOrStdout(), summary, opts.pretty)
				}
				return printKeyValue(cmd.OutOrStdout(), [][]string{
					{"Total", strconv.Itoa(summary.Total)},
					{"Ativos", strconv.Itoa(summary.Active)},
					{"Novos (7 dias)", strconv.Itoa(summary.NewLast7Days)},
					{"Atualizados (3 dias)", strconv.Itoa(summary.UpdatedRecently)},
					{"Ativos (%)", fmt.Sprintf("%.2f", summary.ActiveShare)},
				})
			})
		},
	}
	bindFilterFlags(overview, overviewFlags)

	ads.AddCommand(list, overview)
	return ads
}

func bindFilterFlags(cmd *cobra.Command, flags *adsListFlags) {
	cmd.Flags().StringVar(&flags.status, "status", "all", "Filtro de status: all, active, inactive")
	cmd.Flags().StringVar(&flags.from, "from", "", "Data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.to, "to", "", "Data final (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.search, "search", "", "Busca no título e no texto do anúncio")
}

func adsTable(ads []domain.Ad) ([]string, [][]string) {
	headers := []string{"ID", "STATUS", "PLATAFORMA", "TÍTULO", "INÍCIO", "GASTO", "LEADS"}

	rows := make([][]string, 0, len(ads))
	for _, ad := range ads {
		spend, leads := "-", "-"
		if ad.AdMetrics != nil {
			spend = fmt.Sprintf("%.2f %s", ad.Spend, ad.Currency)
			leads = strconv.Itoa(ad.Leads)
		}

		rows = append(rows, []string{
			ad.ID,
			string(ad.Status),
			string(ad.Platform),
			truncate(ad.Headline, 40),
			orDash(ad.StartDate),
			spend,
			leads,
		})
	}

	return headers, rows
}
