// Package nationalid validates Spanish identity documents: the personal DNI,
// the foreigner NIE and the business CIF. Validators never panic on malformed
// input; they report false instead. The dispatching helpers (ValidatePersonal
// and ValidateBusiness) trim and upper-case their input before checking the
// format and the control character.
package nationalid
