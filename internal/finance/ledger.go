package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	DefaultSavings      = decimal.NewFromInt(1000)
	DefaultStudentLoans = decimal.NewFromInt(30000)

	// NightShiftMultiplier scales CalculateShiftPay while the night flag is
	// set. ReceiveNightShiftPay takes its own differential from the caller.
	NightShiftMultiplier = decimal.RequireFromString("1.2")
	OvertimeRate         = decimal.RequireFromString("1.5")

	daysPerYear   = decimal.NewFromInt(365)
	weeksPerYear  = decimal.NewFromInt(52)
	shiftsPerWeek = decimal.NewFromInt(3)
	two           = decimal.NewFromInt(2)
)

// Ledger tracks salary, savings and loans for one nurse.
// Savings never go negative through a withdrawal: MakePayment refuses
// instead.
type Ledger struct {
	salary       decimal.Decimal
	savings      decimal.Decimal
	expenses     decimal.Decimal
	studentLoans decimal.Decimal
	balance      decimal.Decimal
	nightShift   bool
}

func New(startingSalary decimal.Decimal) *Ledger {
	return &Ledger{
		salary:       startingSalary,
		savings:      DefaultSavings,
		studentLoans: DefaultStudentLoans,
	}
}

// CalculateShiftPay returns the daily rate, scaled by NightShiftMultiplier
// when the night flag is set.
func (l *Ledger) CalculateShiftPay() decimal.Decimal {
	base := l.salary.Div(daysPerYear)
	if l.nightShift {
		return base.Mul(NightShiftMultiplier)
	}
	return base
}

func (l *Ledger) ProcessShiftPay() {
	l.balance = l.balance.Add(l.CalculateShiftPay())
}

// AdjustSalaryForPartialShift credits half a shift to the balance and
// returns the credited amount.
func (l *Ledger) AdjustSalaryForPartialShift() decimal.Decimal {
	partial := l.CalculateShiftPay().Div(two)
	l.balance = l.balance.Add(partial)
	return partial
}

func (l *Ledger) perShiftPaycheck() decimal.Decimal {
	return l.salary.Div(weeksPerYear).Div(shiftsPerWeek)
}

// ReceiveSalary adds one shift's paycheck (three shifts a week) to savings.
func (l *Ledger) ReceiveSalary() {
	l.savings = l.savings.Add(l.perShiftPaycheck())
}

// ReceiveNightShiftPay adds one shift's paycheck scaled by differential to
// savings and returns the amount.
func (l *Ledger) ReceiveNightShiftPay(differential decimal.Decimal) decimal.Decimal {
	paycheck := l.perShiftPaycheck().Mul(differential)
	l.savings = l.savings.Add(paycheck)
	return paycheck
}

// MakePayment debits savings if they cover amount. It is the only
// withdrawal path; on insufficient funds nothing changes.
func (l *Ledger) MakePayment(amount decimal.Decimal) bool {
	if l.savings.GreaterThanOrEqual(amount) {
		l.savings = l.savings.Sub(amount)
		return true
	}
	return false
}

func (l *Ledger) PayStudentLoans(amount decimal.Decimal) bool {
	if !l.MakePayment(amount) {
		return false
	}
	l.studentLoans = decimal.Max(decimal.Zero, l.studentLoans.Sub(amount))
	return true
}

func (l *Ledger) IncreaseSalary(raise decimal.Decimal) {
	l.salary = l.salary.Add(raise)
}

func (l *Ledger) AdjustBaseSalary(multiplier decimal.Decimal) {
	l.salary = l.salary.Mul(multiplier)
}

func (l *Ledger) overtimeDifferential() decimal.Decimal {
	regular := l.CalculateShiftPay()
	return regular.Mul(OvertimeRate).Sub(regular)
}

// ApplyOvertimePay folds the overtime differential (0.5x of the current
// shift pay) into the base salary. The raise is permanent and compounds
// with every overtime shift. It returns the differential.
func (l *Ledger) ApplyOvertimePay() decimal.Decimal {
	diff := l.overtimeDifferential()
	l.salary = l.salary.Add(diff)
	return diff
}

// CreditOvertime pays the same differential once, into the balance,
// leaving the base salary untouched.
func (l *Ledger) CreditOvertime() decimal.Decimal {
	diff := l.overtimeDifferential()
	l.balance = l.balance.Add(diff)
	return diff
}

func (l *Ledger) SetNightShiftDifferential(night bool) {
	l.nightShift = night
}

func (l *Ledger) NightShift() bool              { return l.nightShift }
func (l *Ledger) Salary() decimal.Decimal       { return l.salary }
func (l *Ledger) Savings() decimal.Decimal      { return l.savings }
func (l *Ledger) Expenses() decimal.Decimal     { return l.expenses }
func (l *Ledger) StudentLoans() decimal.Decimal { return l.studentLoans }
func (l *Ledger) Balance() decimal.Decimal      { return l.balance }

func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Salary:       l.salary,
		Savings:      l.savings,
		Expenses:     l.expenses,
		StudentLoans: l.studentLoans,
		Balance:      l.balance,
		NightShift:   l.nightShift,
	}
}

func (l *Ledger) String() string {
	return fmt.Sprintf("Salary: $%s/year, Savings: $%s, Student Loans: $%s",
		l.salary.StringFixed(2), l.savings.StringFixed(2), l.studentLoans.StringFixed(2))
}

// Snapshot is a point-in-time copy of a Ledger.
type Snapshot struct {
	Salary       decimal.Decimal `json:"salary"`
	Savings      decimal.Decimal `json:"savings"`
	Expenses     decimal.Decimal `json:"expenses"`
	StudentLoans decimal.Decimal `json:"student_loans"`
	Balance      decimal.Decimal `json:"balance"`
	NightShift   bool            `json:"night_shift"`
}
