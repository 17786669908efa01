package question

import "fmt"

// Intro is printed once before the first question.
const Intro = `
This is the rdd command-line wizard. It helps you construct a sensible rdd
command line. The wizard asks a series of questions and eventually prints a
command line based on your answers. Optionally, the wizard also runs that
command.

Type '?' to obtain help information about a question.

Rdd comes with a man page. Type 'man rdd' in another window to read it.
`

func sizeHelp(what string) string {
	return fmt.Sprintf(`
The %s is given in bytes. You may use the following multipliers: b or B
(512-byte block or sector); k or K (kilobyte); m or M (megabyte); g or G
(gigabyte). There should be no space between a number and its multiplier.
`, what)
}

const (
	modePrompt = `In which mode do you want to run rdd [local|client|server]?`
	modeHelp   = `
In local mode, you can copy data within a single file system. (If you have
NFS mount points, your file system may span multiple hosts.)

In client mode, you can copy a file across the network to a server host. On
the server host, you must start a server process that will receive and
process the data that you send to it.

In server mode, you can receive a file from an rdd client on another host.
`

	verbosePrompt = `Do you want rdd to be verbose?`
	verboseHelp   = `
In verbose mode, rdd prints more informative messages than it normally does.
This may be useful for debugging a problem or just for understanding what is
happening.
`

	progressPrompt = `How often should rdd report progress [seconds; 0 means never]?`
	progressHelp   = `
If you say 0 here, rdd will not print periodic progress messages.

If you specify some positive number s, rdd will print a progress line every s
seconds (approximately). The progress line tells you how much of the data has
already been copied and gives the current copy speed.
`

	hashPrompt = `Hash the data?`
	hashHelp   = `
A (cryptographic) hash is a fixed-length digital fingerprint of a sequence of
bytes that is computed by a well-defined hash algorithm. It is very difficult
to find two inputs that have the same hash value in a reasonable amount of
time.

Computing a cryptographic hash over the data allows you to verify the data's
integrity at another time by recomputing the hash value.

The hash is computed only over the data that is read. Rdd does not guarantee
that the data it reads will be written to disk (or to the network) correctly.
To make sure that you have stored the data correctly, recompute the hash value
over the stored data and compare it to the hash value computed by rdd. They
should be equal.

You can use the following hash algorithms: MD5 and SHA1.
`

	md5Prompt = `Use MD5?`
	md5Help   = `
MD5 is a cryptographic hash algorithm. It generates a 128-bit hash value from
an arbitrary input stream. For a full description, see RFC 1321. MD5 is widely
used, but has known weaknesses. SHA1 is considered stronger, but is not used
as widely. Many hash-value databases consist only of MD5 hash values.
`

	sha1Prompt = `Use SHA1?`
	sha1Help   = `
SHA-1 is a cryptographic hash algorithm. It generates a 160-bit hash value
from an arbitrary input stream. For a full description, see FIPS 180 (a U.S.
Federal Information Processing standard).
`

	sourcePrompt = `Input file:`
	sourceHelp   = `
This is the name of the file from which data will be read.
`

	destHostPrompt = `Destination host:`
	destHostHelp   = `
You can specify the destination host's DNS host name (e.g., foo.bar) or its
IPv4 address in dotted quad notation (e.g., 192.168.1.1). The DNS host name
will work only if your client host knows how to resolve DNS host names to IPv4
addresses.
`

	portPrompt = `At which TCP port does the rdd server listen?`
	portHelp   = `
By default, rdd clients and servers assume that rdd requests must be sent to
TCP port 4832 on the server host. If you want to use another port, specify
the same number at both the client and the server side. Remember that ports
0-1023 are reserved for privileged uses. Port numbers higher than 65535 are
invalid.
`

	destFilePrompt = `Output file:`
	destFileHelp   = `
This is the name of the output file. All directories leading up to the output
file should already exist; rdd will not create missing directories.

If you do not want to create an output file, just hit ENTER.

If you use output splitting, rdd will prefix the name of each output file with
a sequence number. Do not specify such prefixes manually. For example,
/tmp/disk.img will automatically be converted to /tmp/000-disk.img,
/tmp/001-disk.img, and so on.
`

	logFilePrompt = `Log file:`
	logFileHelp   = `
This is the name of the file in which rdd's messages will be logged. These
messages will always be visible on your screen as well. If you do not wish to
log rdd messages to a file, just hit ENTER.
`

	blockSizePrompt = `Block size?`
	blockSizeHelp   = `
The block size specifies how much data rdd will read and write at a time. The
block size should be (significantly) less than the size of your machine's
physical memory. Very small block sizes slow down the copying and very large
block sizes waste memory without improving performance.
`

	recoverPrompt = `Do you want to modify any recovery options?`
	recoverHelp   = `
Recovery options include the minimum recovery block size and the maximum
number of read errors.
`

	minBlockSizePrompt = `Minimum block size?`
	minBlockSizeHelp   = `
When read errors occur, rdd progressively reduces its block size. This way,
the amount of data lost to read errors is reduced. You must specify the
minimum block size. Rdd will not use blocks that are smaller than this size.
If a read error occurs, at least this many bytes of data will be lost.
`

	maxErrorsPrompt = `Quit after how many read errors?`
	maxErrorsHelp   = `
By default, rdd will not exit after read errors. With this option, you can
force rdd to exit after a specified number of read errors. If you specify 0,
rdd allows infinitely many read errors.
`

	slicePrompt = `Process entire input file?`
	sliceHelp   = `
Say 'yes' if you want to process all bytes in the input file. Say 'no' if you
want to process a single contiguous range of the input file.
`

	offsetPrompt = `Input file offset (in bytes)?`
	offsetHelp   = `
Specify at which input file offset rdd should start reading data.
`

	countPrompt = `How many bytes to read?`
	countHelp   = `
Specify how many input bytes should be read.
`

	runPrompt = `Run now?`
	runHelp   = `
Type 'yes' to run your rdd command now. Type 'no' to quit.
`
)
