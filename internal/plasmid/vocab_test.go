package plasmid

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_Categorize(t *testing.T) {
	type args struct {
		token string
	}
	tests := []struct {
		name string
		args args
		want Category
	}{
		{
			"condition token",
			args{token: "<HOST:ECOLI>"},
			CategoryCondition,
		},
		{
			"condition token with underscores",
			args{token: "<CLONING:GOLDEN_GATE>"},
			CategoryCondition,
		},
		{
			"control token",
			args{token: "<EOS>"},
			CategoryControl,
		},
		{
			"nucleotide",
			args{token: "G"},
			CategoryNucleotide,
		},
		{
			"lowercase base is unknown",
			args{token: "g"},
			CategoryUnknown,
		},
		{
			"unbracketed text is unknown",
			args{token: "HOST:ECOLI"},
			CategoryUnknown,
		},
		{
			"lowercase bracketed is unknown",
			args{token: "<eos>"},
			CategoryUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.args.token); got != tt.want {
				t.Errorf("Categorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_NewVocab(t *testing.T) {
	valid := map[string]int{
		BOSToken: 0, PADToken: 1, EOSToken: 2, UNKToken: 3, SEQToken: 4,
		"A": 5, "C": 6, "G": 7, "T": 8,
	}

	type args struct {
		tokens map[string]int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"minimal valid vocabulary",
			args{tokens: valid},
			false,
		},
		{
			"missing control token",
			args{tokens: map[string]int{
				BOSToken: 0, PADToken: 1, EOSToken: 2, UNKToken: 3,
				"A": 5, "C": 6, "G": 7, "T": 8,
			}},
			true,
		},
		{
			"missing nucleotide",
			args{tokens: map[string]int{
				BOSToken: 0, PADToken: 1, EOSToken: 2, UNKToken: 3, SEQToken: 4,
				"A": 5, "C": 6, "G": 7,
			}},
			true,
		},
		{
			"duplicate id",
			args{tokens: map[string]int{
				BOSToken: 0, PADToken: 1, EOSToken: 2, UNKToken: 3, SEQToken: 4,
				"A": 5, "C": 6, "G": 7, "T": 5,
			}},
			true,
		},
		{
			"negative id",
			args{tokens: map[string]int{
				BOSToken: -1, PADToken: 1, EOSToken: 2, UNKToken: 3, SEQToken: 4,
				"A": 5, "C": 6, "G": 7, "T": 8,
			}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVocab(tt.args.tokens)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewVocab() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_NewVocab_configError(t *testing.T) {
	_, err := NewVocab(map[string]int{})
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("NewVocab() error = %T, want *ConfigError", err)
	}
}

func Test_LoadVocab(t *testing.T) {
	data := []byte(`{"<BOS>":0,"<PAD>":1,"<EOS>":2,"<UNK>":3,"<SEQ>":4,"A":5,"C":6,"G":7,"T":8,"<HOST:ECOLI>":9}`)

	v, err := LoadVocab(data)
	if err != nil {
		t.Fatalf("LoadVocab() error = %v", err)
	}
	if v.Len() != 10 {
		t.Errorf("Len() = %d, want 10", v.Len())
	}

	id, ok := v.ID("<HOST:ECOLI>")
	if !ok || id != 9 {
		t.Errorf("ID(<HOST:ECOLI>) = %d, %v, want 9, true", id, ok)
	}

	token, ok := v.Token(5)
	if !ok || token != "A" {
		t.Errorf("Token(5) = %q, %v, want A, true", token, ok)
	}

	if _, err := LoadVocab([]byte("not json")); err == nil {
		t.Error("LoadVocab() expected an error for malformed json")
	}
}

func Test_DefaultVocab(t *testing.T) {
	v := DefaultVocab()

	if v.Len() != 72 {
		t.Errorf("Len() = %d, want 72", v.Len())
	}

	wantControls := []string{BOSToken, PADToken, EOSToken, UNKToken, SEQToken}
	if got := v.ControlTokens(); !reflect.DeepEqual(got, wantControls) {
		t.Errorf("ControlTokens() = %v, want %v", got, wantControls)
	}

	conditions := v.ConditionTokens()
	if len(conditions) != 63 {
		t.Errorf("len(ConditionTokens()) = %d, want 63", len(conditions))
	}
	for _, token := range conditions {
		if Categorize(token) != CategoryCondition {
			t.Errorf("ConditionTokens() returned non-condition token %q", token)
		}
	}

	// ids are assigned by position and the listing is id-ordered
	prev := -1
	for _, token := range conditions {
		id, _ := v.ID(token)
		if id <= prev {
			t.Errorf("ConditionTokens() not ordered by id at %q", token)
		}
		prev = id
	}
}

func Test_LoadVocabFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.json")

	data := []byte(`{"<BOS>":0,"<PAD>":1,"<EOS>":2,"<UNK>":3,"<SEQ>":4,"A":5,"C":6,"G":7,"T":8}`)
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabFile(path)
	if err != nil {
		t.Fatalf("LoadVocabFile() error = %v", err)
	}
	if v.Len() != 9 {
		t.Errorf("Len() = %d, want 9", v.Len())
	}

	if _, err := LoadVocabFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadVocabFile() expected an error for a missing file")
	}
}
