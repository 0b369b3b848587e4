package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Кредитный калькулятор",
}

var loanCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Рассчитать платежи по кредиту",
	Example: `  loangoals loan calc --amount "1 000 000" --rate 12 --term 5
  loangoals loan calc --amount 75000000 --rate 14,5 --term 20 --method differentiated --schedule`,
	RunE: runLoanCalc,
}

var loanCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Сравнить аннуитетный и дифференцированный платежи",
	RunE:  runLoanCompare,
}

var loanGoalCmd = &cobra.Command{
	Use:   "add-goal",
	Short: "Добавить цель «погасить кредит» (повторный вызов обновит существующую)",
	RunE:  runLoanGoal,
}

func init() {
	rootCmd.AddCommand(loanCmd)
	loanCmd.AddCommand(loanCalcCmd, loanCompareCmd, loanGoalCmd)

	for _, c := range []*cobra.Command{loanCalcCmd, loanCompareCmd, loanGoalCmd} {
		c.Flags().String("amount", "", "Сумма кредита")
		c.Flags().String("rate", "", "Годовая ставка, %")
		c.Flags().String("term", "", "Срок, лет")
		_ = c.MarkFlagRequired("amount")
		_ = c.MarkFlagRequired("rate")
		_ = c.MarkFlagRequired("term")
	}
	for _, c := range []*cobra.Command{loanCalcCmd, loanGoalCmd} {
		c.Flags().String("method", string(calculations.MethodAnnuity), "Способ погашения: annuity или differentiated")
	}
	loanCalcCmd.Flags().Bool("schedule", false, "Показать график платежей")
}

func loanInput(cmd *cobra.Command) (calculations.LoanInput, error) {
	amount, _ := cmd.Flags().GetString("amount")
	rate, _ := cmd.Flags().GetString("rate")
	term, _ := cmd.Flags().GetString("term")
	method := string(calculations.MethodAnnuity)
	if cmd.Flags().Lookup("method") != nil {
		method, _ = cmd.Flags().GetString("method")
	}
	return calculations.ParseLoanInput(amount, rate, term, method)
}

func runLoanCalc(cmd *cobra.Command, args []string) error {
	in, err := loanInput(cmd)
	if err != nil {
		return err
	}
	withSchedule, _ := cmd.Flags().GetBool("schedule")

	res, err := app.CalculateLoan(ctxOf(cmd), in, withSchedule)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), res)
	}

	outln(cmd, "Способ погашения:   %s", res.Method.Title())
	outln(cmd, "Срок:               %d мес.", res.Months)
	if res.Method == calculations.MethodDifferentiated {
		outln(cmd, "Первый платеж:      %s", fmtMoney(res.MonthlyPayment))
		outln(cmd, "Последний платеж:   %s", fmtMoney(res.LastPayment))
		outln(cmd, "Средний платеж:     %s", fmtMoney(res.AveragePayment))
	} else {
		outln(cmd, "Ежемесячный платеж: %s", fmtMoney(res.MonthlyPayment))
	}
	outln(cmd, "Переплата:          %s", fmtMoney(res.TotalOverpay))
	outln(cmd, "Всего выплат:       %s", fmtMoney(res.TotalAmount))

	if withSchedule {
		tw := newTable(cmd)
		fmt.Fprintln(tw, "\nМесяц\tПлатеж\tОсновной долг\tПроценты\tОстаток")
		for _, row := range res.Schedule {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Period,
				fmtMoney(row.Payment), fmtMoney(row.PrincipalPortion),
				fmtMoney(row.InterestPortion), fmtMoney(row.RemainingBalance))
		}
		return tw.Flush()
	}
	return nil
}

func runLoanCompare(cmd *cobra.Command, args []string) error {
	in, err := loanInput(cmd)
	if err != nil {
		return err
	}

	cmp, err := app.CompareLoans(ctxOf(cmd), in.Principal, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), cmp)
	}

	tw := newTable(cmd)
	fmt.Fprintln(tw, "\tАннуитет\tДифференцированный")
	fmt.Fprintf(tw, "Платеж (первый)\t%s\t%s\n", fmtMoney(cmp.Annuity.MonthlyPayment), fmtMoney(cmp.Differentiated.MonthlyPayment))
	fmt.Fprintf(tw, "Последний платеж\t%s\t%s\n", fmtMoney(cmp.Annuity.LastPayment), fmtMoney(cmp.Differentiated.LastPayment))
	fmt.Fprintf(tw, "Переплата\t%s\t%s\n", fmtMoney(cmp.Annuity.TotalOverpay), fmtMoney(cmp.Differentiated.TotalOverpay))
	fmt.Fprintf(tw, "Всего выплат\t%s\t%s\n", fmtMoney(cmp.Annuity.TotalAmount), fmtMoney(cmp.Differentiated.TotalAmount))
	if err := tw.Flush(); err != nil {
		return err
	}
	outln(cmd, "\nРазница в переплате: %s", fmtMoney(cmp.OverpayDifference))
	outln(cmd, "%s", cmp.Recommendation)
	return nil
}

func runLoanGoal(cmd *cobra.Command, args []string) error {
	in, err := loanInput(cmd)
	if err != nil {
		return err
	}

	g, isNew, err := app.AddLoanGoal(ctxOf(cmd), in)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{"goal": g, "isNew": isNew})
	}

	if isNew {
		outln(cmd, "Цель создана: %s", g.Name)
	} else {
		outln(cmd, "Цель с такими параметрами уже есть, обновлена: %s", g.Name)
	}
	outln(cmd, "ID: %s, сумма: %s, взнос: %s, до %s", g.ID, fmtMoney(g.TargetAmount), fmtMoney(g.MonthlyContribution), g.Deadline)
	return nil
}
