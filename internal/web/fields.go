package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

type Kind int

const (
	Number Kind = iota
	YesNo
	NegativePositive
)

type Option struct {
	Value string
	Label string
}

// Field is one form input bound to a PatientRecord key.
type Field struct {
	Name    string
	Label   string
	Kind    Kind
	Min     float64
	Max     float64
	HasMax  bool
	Step    float64
	Default float64
}

func (f Field) Options() []Option {
	switch f.Kind {
	case YesNo:
		return []Option{{"0", "No"}, {"1", "Yes"}}
	case NegativePositive:
		return []Option{{"0", "Negative"}, {"1", "Positive"}}
	}
	return nil
}

func (f Field) IsChoice() bool {
	return f.Kind != Number
}

// DefaultValue is the form value shown before anything is submitted.
func (f Field) DefaultValue() string {
	return formatNumber(f.Default)
}

// parse applies the same constraints the input widget does.
func (f Field) parse(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s: value is required", f.Label)
	}

	if f.IsChoice() {
		switch raw {
		case "0":
			return 0, nil
		case "1":
			return 1, nil
		}
		return 0, fmt.Errorf("%s: %q is not a valid choice", f.Label, raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", f.Label, raw)
	}
	if v < f.Min {
		return 0, fmt.Errorf("%s: must be at least %s", f.Label, formatNumber(f.Min))
	}
	if f.HasMax && v > f.Max {
		return 0, fmt.Errorf("%s: must be at most %s", f.Label, formatNumber(f.Max))
	}
	return v, nil
}

type Section struct {
	Title  string
	Fields []Field
}

func count(name, label string) Field {
	return Field{Name: name, Label: label, Kind: Number, Step: 1}
}

func years(name, label string) Field {
	return Field{Name: name, Label: label, Kind: Number, Step: 0.1}
}

func yesNo(name, label string) Field {
	return Field{Name: name, Label: label, Kind: YesNo}
}

func diagnostic(name, label string) Field {
	return Field{Name: name, Label: label, Kind: NegativePositive}
}

var Sections = []Section{
	{
		Title: "Patient Information",
		Fields: []Field{
			{Name: "Age", Label: "Age", Kind: Number, Min: 15, Max: 100, HasMax: true, Step: 1, Default: 30},
			{Name: "Number_of_sexual_partners", Label: "Number of sexual partners", Kind: Number, Step: 1, Default: 1},
			{Name: "First_sexual_intercourse", Label: "Age at first sexual intercourse", Kind: Number, Min: 10, Max: 50, HasMax: true, Step: 1, Default: 18},
		},
	},
	{
		Title: "Pregnancy & Contraception",
		Fields: []Field{
			count("Num_of_pregnancies", "Number of pregnancies"),
			yesNo("Hormonal_Contraceptives", "Hormonal Contraceptives"),
			years("Hormonal_Contraceptives_years", "Years of hormonal contraceptives use"),
		},
	},
	{
		Title: "IUD",
		Fields: []Field{
			yesNo("IUD", "IUD Use"),
			years("IUD_years", "Years of IUD use"),
		},
	},
	{
		Title: "Smoking History",
		Fields: []Field{
			yesNo("Smokes", "Smoker"),
			count("Smokes_years", "Years smoked"),
			years("Smokes_packs_year", "Packs per year"),
		},
	},
	{
		Title: "STD History",
		Fields: []Field{
			yesNo("STDs", "History of STDs"),
			count("STDs_number", "Number of STD diagnoses"),
		},
	},
	{
		Title: "Specific STD Conditions",
		Fields: []Field{
			yesNo("STDs_vaginal_condylomatosis", "Vaginal Condylomatosis"),
			yesNo("STDs_vulvo_perineal_condylomatosis", "Vulvo-Perineal Condylomatosis"),
			yesNo("STDs_syphilis", "Syphilis"),
			yesNo("STDs_pelvic_inflammatory_disease", "Pelvic Inflammatory Disease"),
			yesNo("STDs_genital_herpes", "Genital Herpes"),
			yesNo("STDs_molluscum_contagiosum", "Molluscum Contagiosum"),
			yesNo("STDs_HIV", "HIV"),
			yesNo("STDs_Hepatitis_B", "Hepatitis B"),
			yesNo("STDs_HPV", "HPV"),
		},
	},
	{
		Title: "Diagnostic Results",
		Fields: []Field{
			count("STDs_Number_of_diagnosis", "Total STD diagnoses"),
			yesNo("Dx_Cancer", "Cancer Diagnosis"),
			yesNo("Dx_CIN", "CIN Diagnosis"),
			yesNo("Dx_HPV", "HPV Diagnosis"),
			yesNo("Dx", "General Diagnosis"),
			diagnostic("Hinselmann", "Hinselmann Test"),
			diagnostic("Schiller", "Schiller Test"),
			diagnostic("Citology", "Cytology Test"),
		},
	},
}

// DefaultValues returns the initial form state.
func DefaultValues() map[string]string {
	values := make(map[string]string, model.FieldCount)
	for _, s := range Sections {
		for _, f := range s.Fields {
			values[f.Name] = f.DefaultValue()
		}
	}
	return values
}

// ParseForm converts a submitted form into a complete PatientRecord.
func ParseForm(form url.Values) (*model.PatientRecord, error) {
	values := make(map[string]float64, model.FieldCount)
	for _, s := range Sections {
		for _, f := range s.Fields {
			v, err := f.parse(form.Get(f.Name))
			if err != nil {
				return nil, err
			}
			values[f.Name] = v
		}
	}

	record, err := model.NewPatientRecord(values)
	if err != nil {
		return nil, err
	}
	if missing := record.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("form is missing fields: %s", strings.Join(missing, ", "))
	}
	return record, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
