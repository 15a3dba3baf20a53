package ingparser

import (
	"ing2ofx/internal/models"

	"github.com/sirupsen/logrus"
)

// defaultCodeMappings translates the mutation codes ING puts in the "Code"
// column to OFX transaction types.
var defaultCodeMappings = map[string]models.TrnType{
	"AC": models.TrnTypePayment,     // Acceptgiro
	"BA": models.TrnTypePOS,         // Betaalautomaat
	"FL": models.TrnTypeXfer,        // Filiaalboeking
	"GF": models.TrnTypePayment,     // Telefonisch bankieren
	"GM": models.TrnTypeATM,         // Geldautomaat
	"GT": models.TrnTypePayment,     // Internetbankieren
	"IC": models.TrnTypeDirectDebit, // Incasso
	"ID": models.TrnTypeDirectDep,   // iDEAL
	"PK": models.TrnTypeCash,        // Opname kantoor
	"PO": models.TrnTypeRepeatPmt,   // Periodieke overschrijving
	"ST": models.TrnTypeDirectDep,   // Storting
}

// directionCodes carry no type of their own; the money direction decides
// between DEBIT and CREDIT.
var directionCodes = map[string]struct{}{
	"DV": {}, // Diversen
	"OV": {}, // Overschrijving
	"VZ": {}, // Verzamelbetaling
}

// codeOverrides holds user-supplied mappings loaded from codes.yaml. They win
// over both the defaults and the direction codes.
var codeOverrides = map[string]models.TrnType{}

// SetCodeMappings installs user overrides for code resolution. Entries with
// an unrecognized OFX type are skipped with a warning. Passing nil or an
// empty map restores the built-in behavior.
func SetCodeMappings(overrides map[string]string) {
	codeOverrides = make(map[string]models.TrnType, len(overrides))
	for code, target := range overrides {
		trnType, ok := models.ParseTrnType(target)
		if !ok {
			log.WithFields(logrus.Fields{
				"code":   code,
				"target": target,
			}).Warn("Skipping code mapping with unknown OFX transaction type")
			continue
		}
		codeOverrides[code] = trnType
	}
}

// resolveTrnType maps a mutation code to an OFX transaction type. The second
// return value is false when the code is unknown and the OTHER fallback was
// used.
func resolveTrnType(code string, debit bool) (models.TrnType, bool) {
	if trnType, ok := codeOverrides[code]; ok {
		return trnType, true
	}

	if _, ok := directionCodes[code]; ok {
		if debit {
			return models.TrnTypeDebit, true
		}
		return models.TrnTypeCredit, true
	}

	if trnType, ok := defaultCodeMappings[code]; ok {
		return trnType, true
	}

	return models.TrnTypeOther, false
}
