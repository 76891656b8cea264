package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// PatientRecord is one request's worth of model input. Pointers distinguish
// an absent field from an explicit 0.
type PatientRecord struct {
	Age                             *float64 `json:"Age" binding:"required"`
	NumberOfSexualPartners          *float64 `json:"Number_of_sexual_partners" binding:"required"`
	FirstSexualIntercourse          *float64 `json:"First_sexual_intercourse" binding:"required"`
	NumOfPregnancies                *float64 `json:"Num_of_pregnancies" binding:"required"`
	Smokes                          *float64 `json:"Smokes" binding:"required"`
	SmokesYears                     *float64 `json:"Smokes_years" binding:"required"`
	SmokesPacksYear                 *float64 `json:"Smokes_packs_year" binding:"required"`
	HormonalContraceptives          *float64 `json:"Hormonal_Contraceptives" binding:"required"`
	HormonalContraceptivesYears     *float64 `json:"Hormonal_Contraceptives_years" binding:"required"`
	IUD                             *float64 `json:"IUD" binding:"required"`
	IUDYears                        *float64 `json:"IUD_years" binding:"required"`
	STDs                            *float64 `json:"STDs" binding:"required"`
	STDsNumber                      *float64 `json:"STDs_number" binding:"required"`
	STDsVaginalCondylomatosis       *float64 `json:"STDs_vaginal_condylomatosis" binding:"required"`
	STDsVulvoPerinealCondylomatosis *float64 `json:"STDs_vulvo_perineal_condylomatosis" binding:"required"`
	STDsSyphilis                    *float64 `json:"STDs_syphilis" binding:"required"`
	STDsPelvicInflammatoryDisease   *float64 `json:"STDs_pelvic_inflammatory_disease" binding:"required"`
	STDsGenitalHerpes               *float64 `json:"STDs_genital_herpes" binding:"required"`
	STDsMolluscumContagiosum        *float64 `json:"STDs_molluscum_contagiosum" binding:"required"`
	STDsHIV                         *float64 `json:"STDs_HIV" binding:"required"`
	STDsHepatitisB                  *float64 `json:"STDs_Hepatitis_B" binding:"required"`
	STDsHPV                         *float64 `json:"STDs_HPV" binding:"required"`
	STDsNumberOfDiagnosis           *float64 `json:"STDs_Number_of_diagnosis" binding:"required"`
	DxCancer                        *float64 `json:"Dx_Cancer" binding:"required"`
	DxCIN                           *float64 `json:"Dx_CIN" binding:"required"`
	DxHPV                           *float64 `json:"Dx_HPV" binding:"required"`
	Dx                              *float64 `json:"Dx" binding:"required"`
	Hinselmann                      *float64 `json:"Hinselmann" binding:"required"`
	Schiller                        *float64 `json:"Schiller" binding:"required"`
	Citology                        *float64 `json:"Citology" binding:"required"`
}

type recordField struct {
	name  string
	index int
}

// recordFields maps each JSON key to its struct field index, in declaration order.
var recordFields = func() []recordField {
	t := reflect.TypeOf(PatientRecord{})
	fields := make([]recordField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		fields = append(fields, recordField{name: name, index: i})
	}
	return fields
}()

// FieldCount is the number of features a record carries.
var FieldCount = len(recordFields)

// FieldNames returns the record keys in canonical order.
func FieldNames() []string {
	names := make([]string, len(recordFields))
	for i, f := range recordFields {
		names[i] = f.name
	}
	return names
}

// IsField reports whether name is a PatientRecord key. Matching is case-sensitive.
func IsField(name string) bool {
	for _, f := range recordFields {
		if f.name == name {
			return true
		}
	}
	return false
}

// Values returns the supplied fields keyed by JSON name. Absent fields are omitted.
func (p *PatientRecord) Values() map[string]float64 {
	v := reflect.ValueOf(p).Elem()
	values := make(map[string]float64, len(recordFields))
	for _, f := range recordFields {
		ptr := v.Field(f.index)
		if ptr.IsNil() {
			continue
		}
		values[f.name] = ptr.Elem().Float()
	}
	return values
}

// Missing lists the fields that were not supplied, in canonical order.
func (p *PatientRecord) Missing() []string {
	v := reflect.ValueOf(p).Elem()
	var missing []string
	for _, f := range recordFields {
		if v.Field(f.index).IsNil() {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Set assigns one field by its JSON name.
func (p *PatientRecord) Set(name string, value float64) error {
	v := reflect.ValueOf(p).Elem()
	for _, f := range recordFields {
		if f.name == name {
			val := value
			v.Field(f.index).Set(reflect.ValueOf(&val))
			return nil
		}
	}
	return fmt.Errorf("unknown patient field %q", name)
}

// NewPatientRecord builds a record from a name/value map. Unknown names are rejected.
func NewPatientRecord(values map[string]float64) (*PatientRecord, error) {
	rec := &PatientRecord{}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := rec.Set(name, values[name]); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
