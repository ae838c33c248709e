package textgen

var (
	registers = []string{"ax", "bx", "cx", "dx", "si", "di", "sp", "bp"}
	opcodes   = []string{"mov", "xor", "and", "or", "add", "sub", "cmp", "jmp", "call"}
	labels    = []string{"init_video", "mem_test", "irq_handler", "io_poll", "sys_boot", "main"}
	types     = []string{"uint8_t", "uint16_t", "uint32_t", "int", "char", "volatile"}
	variables = []string{"ptr", "idx", "count", "mask", "status", "port", "seed", "addr"}
	flags     = []string{"FLAG_READY", "FLAG_IO", "FLAG_DMA", "FLAG_BUSY", "FLAG_IRQ"}
	modules   = []string{"timer", "video", "cache", "serial", "driver", "kernel"}
)

// Status phrases. The parameterised ones are formatted in statusLine; the
// rest get a trailing ellipsis.
const (
	statusCompiling = "COMPILING"
	statusMemory    = "ACCESSING MEMORY"
	statusLinking   = "LINKING"
	statusChecksum  = "CHECKSUM"
	statusLoading   = "LOADING MODULE"
	statusSegfault  = "SEGFAULT"
	statusSyncing   = "SYNCING DISK"
)

var statuses = []string{
	statusCompiling,
	statusMemory,
	statusLinking,
	statusChecksum,
	statusLoading,
	statusSegfault,
	statusSyncing,
}
