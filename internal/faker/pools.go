package faker

// pt_BR word pools.

var maleFirstNames = []string{
	"João", "José", "Antônio", "Francisco", "Carlos", "Paulo", "Pedro", "Lucas",
	"Luiz", "Marcos", "Luís", "Gabriel", "Rafael", "Daniel", "Marcelo", "Bruno",
	"Eduardo", "Felipe", "Raimundo", "Rodrigo", "Matheus", "Gustavo", "Thiago",
	"Vinícius", "Leonardo", "Henrique", "Enzo", "Arthur", "Heitor", "Davi",
	"Bernardo", "Samuel", "Murilo", "Benício", "Otávio", "Caio", "Vitor",
}

var femaleFirstNames = []string{
	"Maria", "Ana", "Francisca", "Antônia", "Adriana", "Juliana", "Márcia",
	"Fernanda", "Patrícia", "Aline", "Sandra", "Camila", "Amanda", "Bruna",
	"Jéssica", "Letícia", "Júlia", "Luciana", "Vanessa", "Mariana", "Gabriela",
	"Beatriz", "Larissa", "Alice", "Helena", "Valentina", "Laura", "Isabela",
	"Sophia", "Manuela", "Luíza", "Lívia", "Heloísa", "Cecília", "Yasmin",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves",
	"Pereira", "Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho",
	"Almeida", "Lopes", "Soares", "Fernandes", "Vieira", "Barbosa", "Rocha",
	"Dias", "Nascimento", "Andrade", "Moreira", "Nunes", "Marques", "Machado",
	"Mendes", "Freitas", "Cardoso", "Ramos", "Gonçalves", "Santana", "Teixeira",
	"Araújo", "Pinto", "Correia", "Cavalcanti", "Monteiro", "Azevedo", "Duarte",
}

var namePrefixes = []string{"Sr.", "Sra.", "Srta.", "Dr.", "Dra."}

var petNames = []string{
	"Thor", "Mel", "Luna", "Bob", "Pipoca", "Nina", "Fred", "Amora", "Paçoca",
	"Bidu", "Belinha", "Toddy", "Lola", "Marley", "Pretinha", "Frida", "Zeus",
	"Chico", "Mia", "Pingo", "Max", "Jade", "Faísca", "Bolinha", "Simba",
	"Pandora", "Tobias", "Cacau", "Floquinho", "Malhado", "Sushi", "Kiara",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "yahoo.com.br", "outlook.com", "uol.com.br",
	"bol.com.br", "terra.com.br", "ig.com.br", "globo.com",
}

var streetPrefixes = []string{
	"Rua", "Avenida", "Travessa", "Alameda", "Praça", "Rodovia", "Via",
	"Vila", "Largo", "Estrada", "Viela", "Ladeira",
}

var streetSuffixes = []string{
	"das Flores", "do Comércio", "Sete de Setembro", "XV de Novembro",
	"da Independência", "Tiradentes", "São João", "Santa Luzia",
	"dos Andradas", "Marechal Deodoro", "Getúlio Vargas", "Rui Barbosa",
	"Dom Pedro II", "Santos Dumont", "da Liberdade", "Presidente Vargas",
}

// bairros
var neighborhoods = []string{
	"Centro", "Jardim América", "Vila Mariana", "Boa Vista", "Santa Cruz",
	"São José", "Aparecida", "Bela Vista", "Santo Antônio", "Jardim Paulista",
	"Cidade Nova", "Vila Nova", "Industrial", "Alto da Glória", "Copacabana",
	"Pinheiros", "Savassi", "Moinhos de Vento", "Barra", "Boa Viagem",
	"Jardim Botânico", "Lagoinha", "Floresta", "Liberdade", "Santa Efigênia",
}

var phoneFormats = []string{
	"+55 (0##) #### ####",
	"+55 (##) ####-####",
	"+55 ## #### ####",
	"(0##) #### ####",
	"(##) 9####-####",
	"(##) ####-####",
	"0800 ### ####",
	"0300 ### ####",
	"##9########",
	"+55 ## 9 #### ####",
}

var complementLabels = []string{"Apto", "Bloco", "Casa", "Conjunto"}
