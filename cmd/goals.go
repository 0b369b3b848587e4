package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
	"github.com/cloud-ru/loan-goals-go/internal/goals"
	"github.com/cloud-ru/loan-goals-go/internal/planner"
)

var goalsCmd = &cobra.Command{
	Use:     "goals",
	Aliases: []string{"goal"},
	Short:   "Финансовые цели",
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список целей",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить цель",
	Example: `  loangoals goals add --name "Отпуск" --target 300000 --monthly 50000
  loangoals goals add --name "Квартира" --target "20 000 000" --current 1500000 --deadline 2030-01-01`,
	RunE: runGoalsAdd,
}

var goalsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить цель (меняются только переданные поля)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsUpdate,
}

var goalsContributeCmd = &cobra.Command{
	Use:   "contribute <id> <amount>",
	Short: "Пополнить цель (отрицательная сумма уменьшает накопленное)",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsContribute,
}

var goalsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить цель",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsDelete,
}

var goalsProjectCmd = &cobra.Command{
	Use:   "project <id>",
	Short: "Прогноз накопления с учетом доходности сбережений",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsProject,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsListCmd, goalsAddCmd, goalsUpdateCmd, goalsContributeCmd, goalsDeleteCmd, goalsProjectCmd)

	goalsListCmd.Flags().String("filter", string(planner.FilterAll), "Отбор: all, active, completed")

	for _, c := range []*cobra.Command{goalsAddCmd, goalsUpdateCmd} {
		c.Flags().String("name", "", "Название")
		c.Flags().String("target", "", "Целевая сумма")
		c.Flags().String("current", "", "Уже накоплено")
		c.Flags().String("monthly", "", "Ежемесячный взнос")
		c.Flags().String("deadline", "", "Дедлайн, ГГГГ-ММ-ДД")
		c.Flags().String("initial", "", "Первоначальный взнос")
	}
	_ = goalsAddCmd.MarkFlagRequired("name")
	_ = goalsAddCmd.MarkFlagRequired("target")

	goalsProjectCmd.Flags().String("rate", "0", "Годовая доходность сбережений, %")
}

// amountFlag возвращает nil, если флаг не передан
func amountFlag(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	v, err := calculations.ParseAmount(name, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func valueOr(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func runGoalsList(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")
	views := app.ListGoals(ctxOf(cmd), planner.Filter(filter))
	if asJSON {
		return printJSON(cmd.OutOrStdout(), views)
	}
	if len(views) == 0 {
		outln(cmd, "Целей пока нет")
		return nil
	}

	tw := newTable(cmd)
	fmt.Fprintln(tw, "ID\tНазвание\tНакоплено\tЦель\tПрогресс\tВзнос\tОсталось мес.\tДедлайн")
	for _, v := range views {
		left := "-"
		if v.MonthsLeft >= 0 {
			left = fmt.Sprint(v.MonthsLeft)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%s\t%s\t%s\n",
			v.ID, v.Name, fmtMoney(v.CurrentAmount), fmtMoney(v.TargetAmount),
			v.Progress, fmtMoney(v.MonthlyContribution), left, v.Deadline)
	}
	return tw.Flush()
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	d := goals.Draft{Type: goals.TypeManual}
	d.Name, _ = cmd.Flags().GetString("name")
	d.Deadline, _ = cmd.Flags().GetString("deadline")

	target, err := amountFlag(cmd, "target")
	if err != nil {
		return err
	}
	current, err := amountFlag(cmd, "current")
	if err != nil {
		return err
	}
	monthly, err := amountFlag(cmd, "monthly")
	if err != nil {
		return err
	}
	if d.InitialPayment, err = amountFlag(cmd, "initial"); err != nil {
		return err
	}
	d.TargetAmount, d.CurrentAmount, d.MonthlyContribution = valueOr(target), valueOr(current), valueOr(monthly)

	g, err := app.AddGoal(ctxOf(cmd), d)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), g)
	}
	outln(cmd, "Цель создана: %s (ID %s), дедлайн %s", g.Name, g.ID, g.Deadline)
	return nil
}

func runGoalsUpdate(cmd *cobra.Command, args []string) error {
	var p goals.Patch
	var err error

	p.Name = stringFlag(cmd, "name")
	p.Deadline = stringFlag(cmd, "deadline")
	if p.TargetAmount, err = amountFlag(cmd, "target"); err != nil {
		return err
	}
	if p.CurrentAmount, err = amountFlag(cmd, "current"); err != nil {
		return err
	}
	if p.MonthlyContribution, err = amountFlag(cmd, "monthly"); err != nil {
		return err
	}
	if p.InitialPayment, err = amountFlag(cmd, "initial"); err != nil {
		return err
	}

	g, ok, err := app.UpdateGoal(ctxOf(cmd), args[0], p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("цель %s не найдена", args[0])
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), g)
	}
	outln(cmd, "Цель обновлена: %s", g.Name)
	return nil
}

func runGoalsContribute(cmd *cobra.Command, args []string) error {
	amount, err := calculations.ParseAmount("amount", args[1])
	if err != nil {
		return err
	}

	g, ok, err := app.Contribute(ctxOf(cmd), args[0], amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("цель %s не найдена", args[0])
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), g)
	}
	outln(cmd, "%s: %s из %s (%.1f%%)", g.Name, fmtMoney(g.CurrentAmount), fmtMoney(g.TargetAmount), g.Progress())
	if g.IsCompleted() {
		outln(cmd, "Цель достигнута!")
	}
	return nil
}

func runGoalsDelete(cmd *cobra.Command, args []string) error {
	ok, err := app.DeleteGoal(ctxOf(cmd), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("цель %s не найдена", args[0])
	}
	outln(cmd, "Цель удалена")
	return nil
}

func runGoalsProject(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("rate")
	rate, err := calculations.ParseAmount("rate", raw)
	if err != nil {
		return err
	}

	proj, ok, err := app.ProjectGoal(ctxOf(cmd), args[0], rate)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("цель %s не найдена", args[0])
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), proj)
	}
	outln(cmd, "Цель будет достигнута через %d мес.", proj.Months)
	outln(cmd, "Итоговый баланс: %s, взносы: %s, проценты: %s",
		fmtMoney(proj.FinalBalance), fmtMoney(proj.TotalContributions), fmtMoney(proj.TotalInterest))
	return nil
}
