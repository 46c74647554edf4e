package models

// RegionalHeads is the fixed roster of regional directors and their
// substitutes, four names per region in presentation order. Calendar rows
// are created for these names only; names typed into the form that are not
// on the roster extend the suggestion list but never the calendar.
var RegionalHeads = []string{
	"SERGIO MARTINEZ", "Larry Alegría", "Jenny Toledo", "José Rivera",
	"MARCELA OSORIO", "Soledad Latorre", "Ruben Melo", "Paulina Villalobos",
	"PAULINA URIZAR", "Paula Saavedra", "Patricio Caballero", "Pedro Espinoza",
	"ANDRÉS VERA", "Marisol Villalobos", "Guillermo Hernandez", "Mauricio Vargas",
	"MAYCOL GOMÉZ", "Alejandra Navarrete", "Claudia Galdames", "Claudio Irarrazaval",
	"GUILLERMO ACUÑA", "Andres Zuñiga", "Fernanda León", "Simón Navias",
	"CAMILO FARÍAS", "Sylvia Lagos", "Evelyn Cortes", "Felipe Jara",
	"OSCAR MENARES", "Gisela Delgado", "Ximena Fierro", "Omar González",
	"MINERVA CASTAÑEDA", "Sandra Moreno", "Jaime Zurita", "Claudia Barrientos",
	"NESTOR VILLARROEL", "Claudia San Martin", "Ingrid Evens", "Erick Sánchez",
	"JESSICA CORONADO", "Mery Fontecha", "Paola Almonacid", "Gonzalo Soto",
	"MARILYN CÁRDENAS", "Alex Hernández", "Javier Mancilla", "Rubén Ojeda",
	"ENRIQUE CARRASCO", "Karla Leyton", "Pablo Román", "Patricio Arenas",
	"MILENA BARRIA", "Ema Jerez Poblete", "Verónica Cavieres", "Patricio Olivera",
	"ROBERTO LAU", "Elsa Vega", "Maricela Chávez", "Sergio Tello",
	"CARLOS QUEZADA", "Ingrid Reyes", "Diego Otto", "Ralf Burgos",
}

// LeaveTypes are the selectable values for LeaveRecord.LeaveType.
var LeaveTypes = []string{LeaveTypePrimary, LeaveTypeSubstitute}

// Regions is the fixed row set of the branch-status and emergency tables,
// north to south.
var Regions = []string{
	"Arica", "Tarapacá", "Antofagasta", "Atacama", "Coquimbo",
	"Valparaíso", "R.Metropol.", "O'Higgins", "Maule", "Ñuble",
	"Biobío", "Araucanía", "Los Ríos", "Los Lagos", "Aysén",
	"Magallanes",
}

// ContactPositions are the selectable values for Contact.Position.
var ContactPositions = []string{
	"DIRECTOR/A NACIONAL", "DIRECTOR/A NACIONAL(S)",
	"JEFA/E GABINETE", "JEFA/E GABINETE(S)",
	"JEFA/E COORDINACIÓN TERRITORIAL", "JEFA/E COORDINACIÓN TERRITORIAL(S)",
	"JEFA/E DPTO. ATENCIÓN DE USUARIOS", "JEFA/E DPTO. ATENCIÓN DE USUARIOS(S)",
	"JEFA/E DEPARTAMENTO JURÍDICO", "JEFA/E DEPARTAMENTO JURÍDICO(S)",
	"JEFA/E DIVISIÓN FINANZAS Y ADMINISTRACIÓN", "JEFA/E DIVISIÓN FINANZAS Y ADMINISTRACIÓN(S)",
	"JEFA/E DIVISIÓN OPERACIONES", "JEFA/E DIVISIÓN OPERACIONES(S)",
	"JEFA/E DEPARTAMENTO DE TECNOLOGÍA DE LA INFORMACIÓN", "JEFA/E DEPARTAMENTO DE TECNOLOGÍA DE LA INFORMACIÓN(S)",
	"JEFA/E DEPTO. PREVENCIÓN DE RIESGOS LABORALES", "JEFA/E DEPTO. PREVENCIÓN RIESGOS LABORALES(S)",
	"JEFA/E DEPARTAMENTO DE GESTIÓN DE PERSONAS", "JEFA/E DEPARTAMENTO DE GESTIÓN DE PERSONAS(S)",
	"JEFA/E UNIDAD DE AUDITORÍA", "JEFA/E UNIDAD DE AUDITORÍA(S)",
	"JEFA/E DEPTO. DE ESTUDIOS Y GESTIÓN ESTRATÉGICA", "JEFA/E DEPTO. DE ESTUDIOS Y GESTIÓN ESTRATÉGICA(S)",
	"JEFA/E DPTO. DE ESTUDIOS", "JEFA/E DPTO. DE ESTUDIOS(S)",
	"JEFA/E DEPARTAMENTO DE COMUNICACIONES", "JEFA/E DEPARTAMENTO DE COMUNICACIONES(S)",
	"DIRECTOR/A REGIONAL", "DIRECTOR/A REGIONAL(S)",
}

// ContactDepartments are the selectable values for Contact.Department.
var ContactDepartments = []string{
	"DIRECCIÓN NACIONAL", "GABINETE", "COORDINACIÓN TERRITORIAL",
	"DAU", "DAF", "DIVOP", "DTI", "DEGE", "DGDP", "DAI", "DJU", "DCOM",
	"DSALUD", "DPREV", "DEST", "ANTOFAGASTA", "TARAPACÁ", "ATACAMA",
	"COQUIMBO", "VALPARAÍSO", "O'HIGGINS", "MAULE", "BIOBIO", "ARAUCANÍA",
	"LOS LAGOS", "AYSEN", "MAGALLANES", "E.METROPOLITANA", "LOS RÍOS",
	"ARICA Y PARINACOTA", "ÑUBLE",
}
