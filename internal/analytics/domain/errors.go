package domain

import "errors"

// ErrEmptyInput est retournée quand aucune donnée n'est disponible pour
// l'agrégation ou les statistiques. Pas de valeur par défaut: une analyse
// sur zéro enregistrement n'a pas de sens.
var ErrEmptyInput = errors.New("empty input: no records to analyze")
