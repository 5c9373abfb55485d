package domain

import (
	"time"

	shareddomain "aalsales/internal/shared/domain"
)

// SaleRecord représente une transaction du dataset trimestriel AAL.
// Immutable une fois construit: champs privés, getters en lecture seule.
type SaleRecord struct {
	date      time.Time
	timeOfDay TimeOfDay
	state     State
	group     CustomerGroup
	unit      shareddomain.Quantity
	sales     shareddomain.Amount
}

// NewSaleRecord crée un SaleRecord avec validation des catégories et montants
func NewSaleRecord(
	date time.Time,
	timeOfDay string,
	state string,
	group string,
	unit int,
	sales float64,
) (SaleRecord, error) {
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return SaleRecord{}, err
	}
	st, err := ParseState(state)
	if err != nil {
		return SaleRecord{}, err
	}
	grp, err := ParseCustomerGroup(group)
	if err != nil {
		return SaleRecord{}, err
	}
	qty, err := shareddomain.NewQuantity(unit)
	if err != nil {
		return SaleRecord{}, err
	}
	amount, err := shareddomain.NewAmount(sales)
	if err != nil {
		return SaleRecord{}, err
	}

	return SaleRecord{
		date:      date,
		timeOfDay: tod,
		state:     st,
		group:     grp,
		unit:      qty,
		sales:     amount,
	}, nil
}

// Date retourne la date de la vente
func (r SaleRecord) Date() time.Time {
	return r.date
}

// TimeOfDay retourne le créneau horaire
func (r SaleRecord) TimeOfDay() TimeOfDay {
	return r.timeOfDay
}

// State retourne l'état
func (r SaleRecord) State() State {
	return r.state
}

// Group retourne le groupe de clients
func (r SaleRecord) Group() CustomerGroup {
	return r.group
}

// Unit retourne le nombre d'unités vendues
func (r SaleRecord) Unit() shareddomain.Quantity {
	return r.unit
}

// Sales retourne le montant de la vente
func (r SaleRecord) Sales() shareddomain.Amount {
	return r.sales
}
