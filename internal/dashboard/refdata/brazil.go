package refdata

// Default returns the Brazilian corporate catalog.
func Default() Catalog {
	return Catalog{
		Regions: []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"},
		StatesByRegion: map[string][]string{
			"Norte":        {"AM", "PA", "RO", "RR", "AP", "AC", "TO"},
			"Nordeste":     {"BA", "PE", "CE", "MA", "PB", "SE", "RN", "AL", "PI"},
			"Centro-Oeste": {"GO", "MT", "MS", "DF"},
			"Sudeste":      {"SP", "RJ", "MG", "ES"},
			"Sul":          {"PR", "SC", "RS"},
		},
		Products: []Product{
			{Name: "Produto A", BasePrice: 80},
			{Name: "Produto B", BasePrice: 120},
			{Name: "Produto C", BasePrice: 200},
			{Name: "Produto D", BasePrice: 300},
			{Name: "Produto E", BasePrice: 500},
		},
		Categories:       []string{"Linha Casa", "Linha Escritório", "Linha Premium"},
		Departments:      []string{"Comercial", "Financeiro", "RH", "TI", "Operações", "Logística"},
		Roles:            []string{"Analista", "Senior", "Coordenador", "Gerente", "Estagiário"},
		SalesDepartments: []string{"Comercial", "Operações"},
		FieldDepartments: []string{"Comercial", "Operações", "Logística"},
		CostCenters: []CostCenter{
			{Account: "Operacional", Min: 120_000, Max: 220_000},
			{Account: "Pessoal", Min: 200_000, Max: 350_000},
			{Account: "Logística", Min: 60_000, Max: 140_000},
			{Account: "Marketing", Min: 40_000, Max: 100_000},
		},
		FirstNames: []string{
			"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Daniela", "Diego", "Eduarda",
			"Felipe", "Fernanda", "Gabriel", "Giovanna", "Gustavo", "Helena", "Igor", "Isabela",
			"João", "Juliana", "Larissa", "Leonardo", "Luana", "Lucas", "Marcelo", "Mariana",
			"Matheus", "Natália", "Otávio", "Paula", "Pedro", "Rafael", "Renata", "Rodrigo",
			"Sofia", "Thiago", "Vinícius", "Yasmin",
		},
		LastNames: []string{
			"Almeida", "Alves", "Araújo", "Barbosa", "Cardoso", "Carvalho", "Castro", "Costa",
			"Dias", "Fernandes", "Ferreira", "Gomes", "Lima", "Martins", "Melo", "Moreira",
			"Nascimento", "Oliveira", "Pereira", "Pinto", "Ribeiro", "Rocha", "Rodrigues", "Santos",
			"Silva", "Souza", "Teixeira", "Vieira",
		},
		CompanySuffixes: []string{
			"Ltda.", "S.A.", "e Filhos", "Comércio Ltda.", "Indústria S.A.", "Distribuidora", "ME", "Serviços Ltda.",
		},
	}
}
