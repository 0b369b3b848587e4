package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/loan-goals-go/internal/calculations"
	"github.com/cloud-ru/loan-goals-go/internal/tracker"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Журнал доходов и расходов",
}

var budgetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Записать доход или расход",
	Example: `  loangoals budget add --name "Зарплата" --amount 500000 --type income
  loangoals budget add --name "Интернет" --amount 8000 --category telecom --date 2026-10-05`,
	RunE: runBudgetAdd,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать журнал",
	RunE:  runBudgetList,
}

var budgetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить транзакцию",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetDelete,
}

var budgetSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Итоги по категориям и месяцам",
	RunE:  runBudgetSummary,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	budgetCmd.AddCommand(budgetAddCmd, budgetListCmd, budgetDeleteCmd, budgetSummaryCmd)

	budgetAddCmd.Flags().String("name", "", "Описание")
	budgetAddCmd.Flags().String("amount", "", "Сумма")
	budgetAddCmd.Flags().String("type", string(tracker.KindExpense), "income или expense")
	budgetAddCmd.Flags().String("category", string(tracker.CategoryOther), "Категория: utilities, telecom, food, transport, entertainment, other")
	budgetAddCmd.Flags().String("date", "", "Дата, ГГГГ-ММ-ДД (по умолчанию сегодня)")
	_ = budgetAddCmd.MarkFlagRequired("name")
	_ = budgetAddCmd.MarkFlagRequired("amount")
}

func runBudgetAdd(cmd *cobra.Command, args []string) error {
	var tx tracker.Transaction
	tx.Name, _ = cmd.Flags().GetString("name")
	tx.Date, _ = cmd.Flags().GetString("date")
	kind, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	tx.Kind, tx.Category = tracker.Kind(kind), tracker.Category(category)

	raw, _ := cmd.Flags().GetString("amount")
	amount, err := calculations.ParseAmount("amount", raw)
	if err != nil {
		return err
	}
	tx.Amount = amount

	saved, err := app.AddTransaction(ctxOf(cmd), tx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), saved)
	}
	outln(cmd, "Записано: %s %s (ID %s)", saved.Name, fmtMoney(saved.Amount), saved.ID)
	return nil
}

func runBudgetList(cmd *cobra.Command, args []string) error {
	txs := app.Transactions(ctxOf(cmd))
	if asJSON {
		return printJSON(cmd.OutOrStdout(), txs)
	}
	if len(txs) == 0 {
		outln(cmd, "Журнал пуст")
		return nil
	}

	tw := newTable(cmd)
	fmt.Fprintln(tw, "ID\tДата\tНазвание\tКатегория\tСумма")
	for _, t := range txs {
		sign := "+"
		category := "-"
		if t.Kind == tracker.KindExpense {
			sign = "-"
			category = t.Category.Title()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%s\n", t.ID, t.Date, t.Name, category, sign, fmtMoney(t.Amount))
	}
	return tw.Flush()
}

func runBudgetDelete(cmd *cobra.Command, args []string) error {
	ok, err := app.DeleteTransaction(ctxOf(cmd), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("транзакция %s не найдена", args[0])
	}
	outln(cmd, "Транзакция удалена")
	return nil
}

func runBudgetSummary(cmd *cobra.Command, args []string) error {
	s := app.BudgetSummary(ctxOf(cmd))
	if asJSON {
		return printJSON(cmd.OutOrStdout(), s)
	}

	outln(cmd, "Доходы:  %s", fmtMoney(s.TotalIncome))
	outln(cmd, "Расходы: %s", fmtMoney(s.TotalExpense))
	outln(cmd, "Баланс:  %s", fmtMoney(s.Balance))

	if len(s.ByCategory) > 0 {
		tw := newTable(cmd)
		fmt.Fprintln(tw, "\nКатегория\tСумма\tДоля")
		for _, c := range s.ByCategory {
			fmt.Fprintf(tw, "%s\t%s\t%.2f%%\n", c.Title, fmtMoney(c.Amount), c.Share)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if len(s.ByPeriod) > 0 {
		tw := newTable(cmd)
		fmt.Fprintln(tw, "\nМесяц\tДоходы\tРасходы")
		for _, p := range s.ByPeriod {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Label(), fmtMoney(p.Income), fmtMoney(p.Expense))
		}
		return tw.Flush()
	}
	return nil
}
