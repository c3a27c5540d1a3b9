// Command egrulctl ingests EGRUL/EGRIP XML registry dumps and
// materializes them as Parquet or JSON.
package main

func main() {
	execute()
}
